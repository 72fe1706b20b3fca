package fieldz

import "strings"

// fieldzTagInfo holds parsed information from a `fieldz` struct tag.
type fieldzTagInfo struct {
	Name     string            // name override for the field
	Default  string            // literal default, unconverted
	Factory  string            // name of a method producing the default
	Init     bool              // constructor participation
	HasDef   bool              // whether default= was present
	Metadata map[string]string // unrecognised key=value pairs
}

// parseFieldzTag parses a tag value like `default=30,init=false` or
// `port,default=8080`. Items are comma-separated. The first item, if it does
// not contain '=', is treated as a name override. Recognised key=value pairs:
// default, factory, init (strictly true or false); anything else lands in
// the metadata map.
func parseFieldzTag(tag string) fieldzTagInfo {
	info := fieldzTagInfo{Init: true}
	if tag == "" {
		return info
	}
	parts := strings.Split(tag, ",")
	for idx, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			// no '=' present
			if idx == 0 && info.Name == "" {
				info.Name = p
			}
			continue
		}
		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])
		switch key {
		case "default":
			info.Default = val
			info.HasDef = true
		case "factory":
			info.Factory = val
		case "init":
			// Only the two boolean spellings count; anything else is
			// ignored here and reported by the linter.
			switch val {
			case "true":
				info.Init = true
			case "false":
				info.Init = false
			}
		default:
			if info.Metadata == nil {
				info.Metadata = map[string]string{}
			}
			info.Metadata[key] = val
		}
	}
	return info
}
