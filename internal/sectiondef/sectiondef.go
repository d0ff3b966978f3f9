// Package sectiondef loads composite cross-section assemblies from JSON
// definition files and builds them into section composites.
package sectiondef

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cmccomb/structural-shapes/section"
)

// Definition describes a composite section assembly
type Definition struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Members are applied in order: "add" contributes material, "sub"
	// carves a void out of what came before
	Members []MemberDef `json:"members"`
}

// MemberDef is one signed member of the assembly
type MemberDef struct {
	// Op is "add" or "sub"
	Op    string   `json:"op"`
	Shape ShapeDef `json:"shape"`

	// At places the shape's centroid in the shared frame (default origin)
	At *PointDef `json:"at,omitempty"`
}

// ShapeDef carries the dimensions of one primitive; type selects which
// fields apply
type ShapeDef struct {
	// Type is one of: rod, pipe, rectangle, box-beam, i-beam, polygon
	Type string `json:"type"`

	Radius          float64 `json:"radius,omitempty"`
	OuterRadius     float64 `json:"outer_radius,omitempty"`
	Thickness       float64 `json:"thickness,omitempty"`
	Width           float64 `json:"width,omitempty"`
	Height          float64 `json:"height,omitempty"`
	WebThickness    float64 `json:"web_thickness,omitempty"`
	FlangeThickness float64 `json:"flange_thickness,omitempty"`

	// Vertices defines a polygon outline, in boundary order
	Vertices []PointDef `json:"vertices,omitempty"`
}

// PointDef represents a 2D coordinate
type PointDef struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, err
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// Validate checks the definition before building
func (d *Definition) Validate() error {
	if len(d.Members) == 0 {
		return &ValidationError{"definition must have at least one member"}
	}
	for i, m := range d.Members {
		if m.Op != "add" && m.Op != "sub" {
			return &ValidationError{fmt.Sprintf("member %d: op must be \"add\" or \"sub\", got %q", i+1, m.Op)}
		}
		if m.Shape.Type == "" {
			return &ValidationError{fmt.Sprintf("member %d: shape type is required", i+1)}
		}
	}
	return nil
}

// Build constructs the composite assembly, validating each shape's
// dimensions along the way
func (d *Definition) Build() (*section.Composite, error) {
	c := section.NewComposite()
	for i, m := range d.Members {
		s, err := buildShape(m.Shape)
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", i+1, err)
		}
		if m.At != nil {
			s = s.At(section.Pt(m.At.X, m.At.Y))
		}
		if m.Op == "sub" {
			c.Sub(s)
		} else {
			c.Add(s)
		}
	}
	return c, nil
}

func buildShape(def ShapeDef) (section.Shape, error) {
	switch def.Type {
	case "rod":
		return section.NewRod(def.Radius)
	case "pipe":
		return section.NewPipe(def.OuterRadius, def.Thickness)
	case "rectangle", "rect":
		return section.NewRectangle(def.Width, def.Height)
	case "box-beam", "box":
		return section.NewBoxBeam(def.Width, def.Height, def.Thickness)
	case "i-beam", "ibeam":
		return section.NewIBeam(def.Width, def.Height, def.WebThickness, def.FlangeThickness)
	case "polygon":
		verts := make([]section.Point, len(def.Vertices))
		for i, v := range def.Vertices {
			verts[i] = section.Pt(v.X, v.Y)
		}
		poly, err := section.NewPolygon(verts)
		if err != nil {
			return section.Shape{}, err
		}
		return section.NewCustom(poly)
	default:
		return section.Shape{}, &ValidationError{fmt.Sprintf("unknown shape type %q", def.Type)}
	}
}

// ValidationError represents a definition validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
