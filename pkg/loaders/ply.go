package loaders

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// ErrInvalidPLY is returned for malformed or unsupported PLY input
var ErrInvalidPLY = errors.New("invalid PLY")

const (
	// maxListLength bounds the count prefix of a list property
	maxListLength = 1 << 16
	// maxPrealloc bounds the capacity reserved from header element counts
	maxPrealloc = 1 << 20
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format      string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version     string // Usually "1.0"
	VertexCount int
	FaceCount   int
	VertexProps []PLYProperty
	FaceProps   []PLYProperty

	// Indices of the x, y and z vertex properties
	positionIndices [3]int
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// Mesh is the polygon soup read from a PLY file
type Mesh struct {
	Vertices []core.Vec3
	Faces    [][]int // Vertex indices per face, any number of vertices
}

// LoadPLY loads a PLY file
func LoadPLY(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open PLY file: %w", err)
	}
	defer file.Close()

	mesh, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return mesh, nil
}

// ReadPLY reads an ASCII or binary PLY stream. Only vertex positions and
// face vertex lists are kept; other properties are skipped.
func ReadPLY(r io.Reader) (*Mesh, error) {
	reader := bufio.NewReader(r)
	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, err
	}

	var values valueReader
	switch header.Format {
	case "ascii":
		scanner := bufio.NewScanner(reader)
		scanner.Split(bufio.ScanWords)
		values = &asciiValues{scanner: scanner}
	case "binary_little_endian":
		values = &binaryValues{reader: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryValues{reader: reader, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidPLY, header.Format)
	}

	return readElements(values, header)
}

// parsePLYHeader parses the header up to and including end_header
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{positionIndices: [3]int{-1, -1, -1}}

	magic, err := reader.ReadString('\n')
	if err != nil || strings.TrimSpace(magic) != "ply" {
		return nil, fmt.Errorf("%w: missing ply magic number", ErrInvalidPLY)
	}

	var currentElement string
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("%w: header ended before end_header", ErrInvalidPLY)
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "end_header":
			return header, header.validate()
		case "format":
			if len(parts) >= 3 {
				header.Format = parts[1]
				header.Version = parts[2]
			}
		case "comment", "obj_info":
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("%w: bad element line %q", ErrInvalidPLY, strings.TrimSpace(line))
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("%w: invalid element count %q", ErrInvalidPLY, parts[2])
			}
			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				header.VertexCount = count
			case "face":
				header.FaceCount = count
			default:
				if count > 0 {
					return nil, fmt.Errorf("%w: unsupported element %q", ErrInvalidPLY, currentElement)
				}
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			switch currentElement {
			case "vertex":
				if i := strings.Index("xyz", prop.Name); len(prop.Name) == 1 && i >= 0 {
					header.positionIndices[i] = len(header.VertexProps)
				}
				header.VertexProps = append(header.VertexProps, prop)
			case "face":
				header.FaceProps = append(header.FaceProps, prop)
			}
		}
	}
}

func (h *PLYHeader) validate() error {
	for i, idx := range h.positionIndices {
		if idx < 0 && h.VertexCount > 0 {
			return fmt.Errorf("%w: vertex has no %c property", ErrInvalidPLY, "xyz"[i])
		}
	}
	for _, prop := range h.VertexProps {
		if prop.IsList {
			return fmt.Errorf("%w: list vertex property %q", ErrInvalidPLY, prop.Name)
		}
	}
	if h.FaceCount > 0 && h.faceIndexProperty() < 0 {
		return fmt.Errorf("%w: face has no vertex_indices list", ErrInvalidPLY)
	}
	return nil
}

func (h *PLYHeader) faceIndexProperty() int {
	for i, prop := range h.FaceProps {
		if prop.IsList && (prop.Name == "vertex_indices" || prop.Name == "vertex_index") {
			return i
		}
	}
	return -1
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("%w: invalid property definition", ErrInvalidPLY)
	}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("%w: invalid list property definition", ErrInvalidPLY)
		}
		return PLYProperty{IsList: true, ListType: parts[1], DataType: parts[2], Name: parts[3]}, nil
	}
	return PLYProperty{Type: parts[0], Name: parts[1]}, nil
}

// valueReader reads one scalar of a PLY data type as float64
type valueReader interface {
	scalar(dataType string) (float64, error)
}

type asciiValues struct {
	scanner *bufio.Scanner
}

func (a *asciiValues) scalar(string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(a.scanner.Text(), 64)
}

type binaryValues struct {
	reader *bufio.Reader
	order  binary.ByteOrder
}

func (b *binaryValues) scalar(dataType string) (float64, error) {
	switch dataType {
	case "float", "float32":
		var value float32
		err := binary.Read(b.reader, b.order, &value)
		return float64(value), err
	case "double", "float64":
		var value float64
		err := binary.Read(b.reader, b.order, &value)
		return value, err
	case "int", "int32":
		var value int32
		err := binary.Read(b.reader, b.order, &value)
		return float64(value), err
	case "uint", "uint32":
		var value uint32
		err := binary.Read(b.reader, b.order, &value)
		return float64(value), err
	case "short", "int16":
		var value int16
		err := binary.Read(b.reader, b.order, &value)
		return float64(value), err
	case "ushort", "uint16":
		var value uint16
		err := binary.Read(b.reader, b.order, &value)
		return float64(value), err
	case "char", "int8":
		var value int8
		err := binary.Read(b.reader, b.order, &value)
		return float64(value), err
	case "uchar", "uint8":
		var value uint8
		err := binary.Read(b.reader, b.order, &value)
		return float64(value), err
	default:
		return 0, fmt.Errorf("%w: unsupported data type %q", ErrInvalidPLY, dataType)
	}
}

// readList reads a list property: its count, then that many values
func readList(values valueReader, prop PLYProperty) ([]float64, error) {
	n, err := values.scalar(prop.ListType)
	if err != nil {
		return nil, err
	}
	if n < 0 || n != math.Trunc(n) {
		return nil, fmt.Errorf("%w: bad list length %v", ErrInvalidPLY, n)
	}
	if n > maxListLength {
		return nil, fmt.Errorf("%w: list length %v exceeds %d", ErrInvalidPLY, n, maxListLength)
	}
	list := make([]float64, int(n))
	for i := range list {
		if list[i], err = values.scalar(prop.DataType); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// readElements reads the vertex block and then the face block
func readElements(values valueReader, header *PLYHeader) (*Mesh, error) {
	mesh := &Mesh{
		Vertices: make([]core.Vec3, 0, min(header.VertexCount, maxPrealloc)),
		Faces:    make([][]int, 0, min(header.FaceCount, maxPrealloc)),
	}

	row := make([]float64, len(header.VertexProps))
	for i := 0; i < header.VertexCount; i++ {
		for j, prop := range header.VertexProps {
			v, err := values.scalar(prop.Type)
			if err != nil {
				return nil, fmt.Errorf("%w: vertex %d property %s: %w", ErrInvalidPLY, i, prop.Name, err)
			}
			row[j] = v
		}
		p := header.positionIndices
		mesh.Vertices = append(mesh.Vertices, core.NewVec3(row[p[0]], row[p[1]], row[p[2]]))
	}

	indexProp := header.faceIndexProperty()
	for i := 0; i < header.FaceCount; i++ {
		for j, prop := range header.FaceProps {
			if !prop.IsList {
				if _, err := values.scalar(prop.Type); err != nil {
					return nil, fmt.Errorf("%w: face %d property %s: %w", ErrInvalidPLY, i, prop.Name, err)
				}
				continue
			}
			list, err := readList(values, prop)
			if err != nil {
				return nil, fmt.Errorf("%w: face %d property %s: %w", ErrInvalidPLY, i, prop.Name, err)
			}
			if j != indexProp {
				continue
			}

			face := make([]int, len(list))
			for k, v := range list {
				idx := int(v)
				if idx < 0 || idx >= len(mesh.Vertices) {
					return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidPLY, i, idx, len(mesh.Vertices))
				}
				face[k] = idx
			}
			mesh.Faces = append(mesh.Faces, face)
		}
	}
	return mesh, nil
}

// Bounds returns the box around every vertex
func (m *Mesh) Bounds() core.AABB {
	return core.NewAABBFromPoints(m.Vertices...)
}

// Fit scales the mesh uniformly so its largest extent is size and moves the
// center of its bounds to center
func (m *Mesh) Fit(center core.Vec3, size float64) {
	bounds := m.Bounds()
	extent := bounds.Size()
	largest := math.Max(extent.X, math.Max(extent.Y, extent.Z))
	scale := 1.0
	if largest > 0 {
		scale = size / largest
	}

	mid := bounds.Center()
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Subtract(mid).Multiply(scale).Add(center)
	}
}

// Polygons converts every face to a polygon sharing opts. Faces that do not
// form a valid convex polygon are split into a triangle fan; degenerate
// triangles are dropped and counted.
func (m *Mesh) Polygons(opts ...geometry.Option) (polygons []geometry.Intersectable, skipped int) {
	for _, face := range m.Faces {
		vertices := make([]core.Vec3, len(face))
		for i, idx := range face {
			vertices[i] = m.Vertices[idx]
		}

		if polygon, err := geometry.NewPolygon(vertices, opts...); err == nil {
			polygons = append(polygons, polygon)
			continue
		}
		if len(vertices) < 3 {
			skipped++
			continue
		}
		for i := 1; i+1 < len(vertices); i++ {
			triangle, err := geometry.NewTriangle(vertices[0], vertices[i], vertices[i+1], opts...)
			if err != nil {
				skipped++
				continue
			}
			polygons = append(polygons, triangle)
		}
	}
	return polygons, skipped
}
