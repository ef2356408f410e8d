package completions

import (
	"fmt"
	"strings"
)

// GenerateBash completes flag names; flags taking a value complete file names.
func GenerateBash(bin string, flags []FlagInfo) string {
	var words, valued []string
	for _, f := range flags {
		if f.Long != "" {
			words = append(words, "--"+f.Long)
		}
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
		if f.HasValue {
			if f.Long != "" {
				valued = append(valued, "--"+f.Long)
			}
			if f.Short != "" {
				valued = append(valued, "-"+f.Short)
			}
		}
	}

	fn := "_" + funcName(bin) + "_completions"

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n\n", bin)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	if len(valued) > 0 {
		fmt.Fprintf(&b, "    case \"$prev\" in\n        %s)\n", strings.Join(valued, "|"))
		b.WriteString("            COMPREPLY=($(compgen -f -- \"$cur\"))\n            return\n            ;;\n    esac\n\n")
	}
	b.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(words, " "))
	b.WriteString("        return\n    fi\n")
	b.WriteString("    COMPREPLY=($(compgen -f -- \"$cur\"))\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, bin)
	return b.String()
}

// GenerateZsh emits one _arguments entry per flag.
func GenerateZsh(bin string, flags []FlagInfo) string {
	fn := "_" + funcName(bin)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", bin)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    _arguments -s \\\n")
	for _, f := range flags {
		desc := zshEscape(f.Description)
		value := ""
		if f.HasValue {
			value = ":value:_files"
		}
		switch {
		case f.Long != "" && f.Short != "":
			fmt.Fprintf(&b, "        '(-%s --%s)'{-%s,--%s}'[%s]%s' \\\n", f.Short, f.Long, f.Short, f.Long, desc, value)
		case f.Long != "":
			fmt.Fprintf(&b, "        '--%s[%s]%s' \\\n", f.Long, desc, value)
		case f.Short != "":
			fmt.Fprintf(&b, "        '-%s[%s]%s' \\\n", f.Short, desc, value)
		}
	}
	b.WriteString("        '*:file:_files'\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "compdef %s %s\n", fn, bin)
	return b.String()
}

// GenerateFish emits one complete line per flag.
func GenerateFish(bin string, flags []FlagInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n\n", bin)
	for _, f := range flags {
		fmt.Fprintf(&b, "complete -c %s", bin)
		if f.Short != "" {
			fmt.Fprintf(&b, " -s %s", f.Short)
		}
		if f.Long != "" {
			fmt.Fprintf(&b, " -l %s", f.Long)
		}
		if f.HasValue {
			b.WriteString(" -r -F")
		}
		fmt.Fprintf(&b, " -d '%s'\n", fishEscape(f.Description))
	}
	return b.String()
}

func zshEscape(s string) string {
	return strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`).Replace(s)
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
