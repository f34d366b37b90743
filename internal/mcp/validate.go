// Package mcp implements the tool catalog, argument validation, and
// handlers of the Open Library MCP server.
package mcp

import (
	"fmt"
	"regexp"
	"strings"
)

// fieldSpec describes one argument field of a tool schema: whether it is
// required, its custom messages, and any pattern/enum/default constraints.
// All tool arguments in this server are strings.
type fieldSpec struct {
	Name string

	Required bool
	// EmptyMessage is reported when a required field is present but empty.
	// A missing required field always reports "Required".
	EmptyMessage string

	Pattern        *regexp.Regexp
	PatternMessage string

	Enum        []string
	EnumMessage string
	// FoldCase lowercases the value before the enum check and in the
	// validated output.
	FoldCase bool

	// Default is substituted when an optional field is absent, null, or empty.
	Default string
}

// toolSchema is the declarative argument schema for one tool.
type toolSchema []fieldSpec

// ValidationError is the input fault raised before any I/O when arguments
// do not satisfy a tool schema. It carries one message per violated field.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, ", ")
}

// validateArgs applies a tool schema to raw arguments, returning the typed
// field values with defaults applied, or a ValidationError listing every
// violated field as "<field>: <reason>".
func validateArgs(schema toolSchema, args map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(schema))
	var problems []string

	fail := func(name, reason string) {
		problems = append(problems, fmt.Sprintf("%s: %s", name, reason))
	}

	for _, f := range schema {
		raw, present := args[f.Name]
		if !present || raw == nil {
			if f.Required {
				fail(f.Name, "Required")
				continue
			}
			if f.Default != "" {
				out[f.Name] = f.Default
			}
			continue
		}

		s, ok := raw.(string)
		if !ok {
			fail(f.Name, "Expected string")
			continue
		}
		if f.FoldCase {
			s = strings.ToLower(s)
		}

		if s == "" {
			if f.Required {
				msg := f.EmptyMessage
				if msg == "" {
					msg = "Required"
				}
				fail(f.Name, msg)
				continue
			}
			if f.Default != "" {
				out[f.Name] = f.Default
			}
			continue
		}

		if f.Pattern != nil && !f.Pattern.MatchString(s) {
			fail(f.Name, f.PatternMessage)
			continue
		}
		if len(f.Enum) > 0 && !containsString(f.Enum, s) {
			fail(f.Name, f.EnumMessage)
			continue
		}

		out[f.Name] = s
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Fields: problems}
	}
	return out, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// authorKeyPattern matches Open Library author keys: OL<digits>A.
var authorKeyPattern = regexp.MustCompile(`^OL\d+A$`)

const authorKeyFormatMessage = "Author key must be in the format OL<number>A (e.g. OL23919A)"

// Per-tool argument schemas. Constructed once; read-only afterwards.
var (
	searchBookByTitleSchema = toolSchema{
		{Name: "title", Required: true, EmptyMessage: "Title is required"},
	}

	searchAuthorsByNameSchema = toolSchema{
		{Name: "name", Required: true, EmptyMessage: "Name is required"},
	}

	getAuthorDetailSchema = toolSchema{
		{
			Name:           "author_key",
			Required:       true,
			EmptyMessage:   "Author key is required",
			Pattern:        authorKeyPattern,
			PatternMessage: authorKeyFormatMessage,
		},
	}

	getAuthorPhotoURLSchema = toolSchema{
		{
			Name:           "author_key",
			Required:       true,
			EmptyMessage:   "Author key is required",
			Pattern:        authorKeyPattern,
			PatternMessage: authorKeyFormatMessage,
		},
	}

	getBookCoverURLSchema = toolSchema{
		{
			Name:        "key",
			Required:    true,
			FoldCase:    true,
			Enum:        []string{"isbn", "oclc", "lccn", "olid", "id"},
			EnumMessage: "Key must be one of ISBN, OCLC, LCCN, OLID, ID",
		},
		{Name: "value", Required: true, EmptyMessage: "Identifier value is required"},
		{
			Name:        "size",
			Enum:        []string{"S", "M", "L"},
			EnumMessage: "Size must be one of S, M, L",
			Default:     "L",
		},
	}

	getBookByIdentifierSchema = toolSchema{
		{
			Name:        "id_type",
			Required:    true,
			FoldCase:    true,
			Enum:        []string{"isbn", "lccn", "oclc", "olid"},
			EnumMessage: "Identifier type must be one of isbn, lccn, oclc, olid",
		},
		{Name: "id_value", Required: true, EmptyMessage: "Identifier value is required"},
	}
)
