package config

import (
	"fmt"
	"io"
	"sort"
)

type Config map[string]*cfgVal

// New creates a new configuration object primed with all the
// default values expected by the command line and the example
// grammars.
func New() *Config {
	m := make(Config)
	// indentation used when printing decoded bencode as JSON
	m.SetString("json.indent", "  ")
	// what to do with template keys missing from the context:
	// `error` or `empty`
	m.SetString("blueprint.missing_keys", "error")
	// verbosity of the logger, 0 only shows errors
	m.SetInt("log.verbosity", 0)
	// colorize error messages
	m.SetBool("output.color", true)
	return &m
}

// Dump writes all the settings sorted by key to `w`
func (c *Config) Dump(w io.Writer) {
	fmt.Fprintln(w, "Configuration")

	keys := make([]string, 0, len(*c))
	width := 0
	for k := range *c {
		keys = append(keys, k)
		width = max(width, len(k))
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "%-*s : %s\n", width, k, (*c)[k])
	}
}

type cfgValType int

const (
	cfgValType_Undefined cfgValType = iota
	cfgValType_Bool
	cfgValType_Int
	cfgValType_String
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValType_Undefined: "undefined",
		cfgValType_Bool:      "bool",
		cfgValType_Int:       "int",
		cfgValType_String:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

// assignType is mostly for preventing programming errors, a setting
// can't change its type once it's been assigned
func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValType_Undefined {
		panic(fmt.Sprintf("Can't assign `%s` to type `%s`", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("Can't retrieve `%s` from `%s` variable", vt, v.typ))
	}
}

func (v *cfgVal) String() string {
	switch v.typ {
	case cfgValType_Bool:
		return fmt.Sprintf("%t (bool)", v.asBool)
	case cfgValType_Int:
		return fmt.Sprintf("%d (int)", v.asInt)
	case cfgValType_String:
		return fmt.Sprintf("%q (string)", v.asString)
	default:
		panic(fmt.Sprintf("unknown cfgVal type: %v", v.typ))
	}
}

func (c *Config) slot(path string) *cfgVal {
	if v, ok := (*c)[path]; ok {
		return v
	}
	v := &cfgVal{}
	(*c)[path] = v
	return v
}

func (c *Config) SetBool(path string, v bool) {
	s := c.slot(path)
	s.assignType(cfgValType_Bool)
	s.asBool = v
}

func (c *Config) SetInt(path string, v int) {
	s := c.slot(path)
	s.assignType(cfgValType_Int)
	s.asInt = v
}

func (c *Config) SetString(path string, v string) {
	s := c.slot(path)
	s.assignType(cfgValType_String)
	s.asString = v
}

// lookup panics when `path` isn't set or holds another type, settings
// are all primed by `New` so either is a programming error
func (c *Config) lookup(path string, vt cfgValType) *cfgVal {
	val, ok := (*c)[path]
	if !ok {
		panic(fmt.Sprintf("%s setting `%s` does not exist", vt, path))
	}
	val.checkType(vt)
	return val
}

func (c *Config) GetBool(path string) bool     { return c.lookup(path, cfgValType_Bool).asBool }
func (c *Config) GetInt(path string) int       { return c.lookup(path, cfgValType_Int).asInt }
func (c *Config) GetString(path string) string { return c.lookup(path, cfgValType_String).asString }
