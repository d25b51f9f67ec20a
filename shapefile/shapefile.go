// Package shapefile loads and saves lineskema shapes as YAML documents, so
// expected input layouts can live beside the data they describe instead of
// being hard-coded.
//
// Document form:
//
//	kind: record
//	fields:
//	  - name: content
//	    kind: list
//	    elem: {kind: list, elem: {kind: scalar, scalar: int64}}
//	  - name: caption
//	    kind: text
//
// Kinds are scalar, text, fixed (scalar elem + len), list and record; scalar
// names mirror the lineskema.Scalar* constants (int8..uint64, float32,
// float64, bool, token).
package shapefile

import (
	"io"

	"gopkg.in/yaml.v3"

	lineskema "github.com/reoring/lineskema"
)

type doc struct {
	Kind   string     `yaml:"kind"`
	Scalar string     `yaml:"scalar,omitempty"`
	Len    int        `yaml:"len,omitempty"`
	Elem   *doc       `yaml:"elem,omitempty"`
	Fields []fieldDoc `yaml:"fields,omitempty"`
}

type fieldDoc struct {
	Name string `yaml:"name"`
	doc  `yaml:",inline"`
}

// Unmarshal parses a YAML shape document.
func Unmarshal(data []byte) (*lineskema.Shape, error) {
	var d doc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, lineskema.AppendIssues(nil, lineskema.Issue{
			Path: "/", Code: lineskema.CodeParseError, Message: err.Error(), Cause: err, Line: -1,
		})
	}
	return toShape(&d, "")
}

// Load parses a YAML shape document from r.
func Load(r io.Reader) (*lineskema.Shape, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, lineskema.AppendIssues(nil, lineskema.Issue{
			Path: "/", Code: lineskema.CodeParseError, Message: err.Error(), Cause: err, Line: -1,
		})
	}
	return Unmarshal(data)
}

// Marshal renders a shape as a YAML document.
func Marshal(sh *lineskema.Shape) ([]byte, error) {
	d, err := fromShape(sh, "")
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, lineskema.AppendIssues(nil, lineskema.Issue{
			Path: "/", Code: lineskema.CodeParseError, Message: err.Error(), Cause: err, Line: -1,
		})
	}
	return out, nil
}

func unsupported(path, msg string) error {
	return lineskema.AppendIssues(nil, lineskema.IssueAt(orRoot(path), lineskema.CodeUnsupportedKind, msg, nil))
}

func toShape(d *doc, path string) (*lineskema.Shape, error) {
	if d == nil {
		return nil, unsupported(path, "missing shape node")
	}
	switch d.Kind {
	case "scalar":
		k, ok := scalarKinds[d.Scalar]
		if !ok {
			return nil, unsupported(path, "unknown scalar kind "+quoteOrEmpty(d.Scalar))
		}
		return &lineskema.Shape{Kind: lineskema.ShapeScalar, Scalar: k}, nil
	case "text":
		return &lineskema.Shape{Kind: lineskema.ShapeText}, nil
	case "fixed":
		elem, err := toShape(d.Elem, path+"/elem")
		if err != nil {
			return nil, err
		}
		return &lineskema.Shape{Kind: lineskema.ShapeFixed, Elem: elem, Len: d.Len}, nil
	case "list":
		elem, err := toShape(d.Elem, path+"/elem")
		if err != nil {
			return nil, err
		}
		return &lineskema.Shape{Kind: lineskema.ShapeList, Elem: elem}, nil
	case "record":
		fields := make([]lineskema.Field, 0, len(d.Fields))
		for i := range d.Fields {
			f := &d.Fields[i]
			if f.Name == "" {
				return nil, unsupported(path+"/fields", "record field without a name")
			}
			fsh, err := toShape(&f.doc, path+"/"+f.Name)
			if err != nil {
				return nil, err
			}
			fields = append(fields, lineskema.Field{Name: f.Name, Shape: fsh})
		}
		return &lineskema.Shape{Kind: lineskema.ShapeRecord, Fields: fields}, nil
	default:
		return nil, unsupported(path, "unknown shape kind "+quoteOrEmpty(d.Kind))
	}
}

func fromShape(sh *lineskema.Shape, path string) (*doc, error) {
	if sh == nil {
		return nil, unsupported(path, "nil shape")
	}
	switch sh.Kind {
	case lineskema.ShapeScalar:
		name, ok := scalarNames[sh.Scalar]
		if !ok {
			return nil, unsupported(path, "unknown scalar kind")
		}
		return &doc{Kind: "scalar", Scalar: name}, nil
	case lineskema.ShapeText:
		return &doc{Kind: "text"}, nil
	case lineskema.ShapeFixed:
		elem, err := fromShape(sh.Elem, path+"/elem")
		if err != nil {
			return nil, err
		}
		return &doc{Kind: "fixed", Elem: elem, Len: sh.Len}, nil
	case lineskema.ShapeList:
		elem, err := fromShape(sh.Elem, path+"/elem")
		if err != nil {
			return nil, err
		}
		return &doc{Kind: "list", Elem: elem}, nil
	case lineskema.ShapeRecord:
		fields := make([]fieldDoc, 0, len(sh.Fields))
		for _, f := range sh.Fields {
			fd, err := fromShape(f.Shape, path+"/"+f.Name)
			if err != nil {
				return nil, err
			}
			fields = append(fields, fieldDoc{Name: f.Name, doc: *fd})
		}
		return &doc{Kind: "record", Fields: fields}, nil
	default:
		return nil, unsupported(path, "unknown shape kind")
	}
}

var scalarKinds = map[string]lineskema.ScalarKind{
	"int8":    lineskema.ScalarInt8,
	"int16":   lineskema.ScalarInt16,
	"int32":   lineskema.ScalarInt32,
	"int64":   lineskema.ScalarInt64,
	"uint8":   lineskema.ScalarUint8,
	"uint16":  lineskema.ScalarUint16,
	"uint32":  lineskema.ScalarUint32,
	"uint64":  lineskema.ScalarUint64,
	"float32": lineskema.ScalarFloat32,
	"float64": lineskema.ScalarFloat64,
	"bool":    lineskema.ScalarBool,
	"token":   lineskema.ScalarToken,
}

var scalarNames = func() map[lineskema.ScalarKind]string {
	m := make(map[lineskema.ScalarKind]string, len(scalarKinds))
	for name, k := range scalarKinds {
		m[k] = name
	}
	return m
}()

func quoteOrEmpty(s string) string {
	if s == "" {
		return "(empty)"
	}
	return "\"" + s + "\""
}

func orRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
