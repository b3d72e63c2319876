package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format   string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version  string // Usually "1.0"
	Elements []PLYElement

	VertexCount int
	FaceCount   int
	HasNormals  bool
}

// PLYElement is one "element" block and the properties that make up each of its rows
type PLYElement struct {
	Name  string
	Count int
	Props []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// PLYData contains the geometry loaded from a PLY file
type PLYData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Faces    []int       // Triangle indices (3 per triangle); polygons are fan-triangulated
	Normals  []core.Vec3 // Per-vertex normals (nx, ny, nz) - empty if not present
}

// LoadPLY loads a PLY file and returns its vertex and face data
func LoadPLY(filename string, logger core.Logger) (*PLYData, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	data, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	if logger != nil {
		logger.Printf("Loaded PLY data: %d vertices, %d triangles in %v\n",
			len(data.Vertices), len(data.Faces)/3, time.Since(startTime))
	}
	return data, nil
}

// ReadPLY parses a PLY stream in any of the three standard encodings
func ReadPLY(r io.Reader) (*PLYData, error) {
	reader := bufio.NewReader(r)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values valueReader
	switch header.Format {
	case "ascii":
		values = newASCIIReader(reader)
	case "binary_little_endian":
		values = &binaryReader{r: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryReader{r: reader, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %s", header.Format)
	}

	data, err := readBody(values, header)
	if err != nil {
		return nil, fmt.Errorf("failed to read PLY data: %w", err)
	}
	return data, nil
}

// parsePLYHeader reads up to and including end_header, leaving the reader at the body
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}

	magic, err := reader.ReadString('\n')
	if err != nil || strings.TrimSpace(magic) != "ply" {
		return nil, fmt.Errorf("missing ply magic number")
	}

	var current *PLYElement
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("header ended before end_header: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid format line: %q", line)
			}
			header.Format = parts[1]
			header.Version = parts[2]
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.Elements = append(header.Elements, PLYElement{Name: parts[1], Count: count})
			current = &header.Elements[len(header.Elements)-1]

			switch parts[1] {
			case "vertex":
				header.VertexCount = count
			case "face":
				header.FaceCount = count
			}
		case "property":
			if current == nil {
				return nil, fmt.Errorf("property before any element: %q", line)
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to parse property: %w", err)
			}
			current.Props = append(current.Props, prop)
			if current.Name == "vertex" && prop.Name == "nx" {
				header.HasNormals = true
			}
		default:
			return nil, fmt.Errorf("unexpected header line: %q", line)
		}
	}

	if header.Format == "" {
		return nil, fmt.Errorf("missing format line")
	}
	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	prop := PLYProperty{}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		prop.IsList = true
		prop.ListType = parts[1]
		prop.DataType = parts[2]
		prop.Name = parts[3]
		if getTypeSize(prop.ListType) == 0 || getTypeSize(prop.DataType) == 0 {
			return PLYProperty{}, fmt.Errorf("unsupported list types %s/%s", prop.ListType, prop.DataType)
		}
	} else {
		prop.Type = parts[0]
		prop.Name = parts[1]
		if getTypeSize(prop.Type) == 0 {
			return PLYProperty{}, fmt.Errorf("unsupported data type: %s", prop.Type)
		}
	}

	return prop, nil
}

// readBody walks the elements in header order, keeping vertex and face data and skipping the rest
func readBody(values valueReader, header *PLYHeader) (*PLYData, error) {
	data := &PLYData{
		Vertices: make([]core.Vec3, 0, header.VertexCount),
		Faces:    make([]int, 0, header.FaceCount*3),
	}
	if header.HasNormals {
		data.Normals = make([]core.Vec3, 0, header.VertexCount)
	}

	for _, element := range header.Elements {
		for i := 0; i < element.Count; i++ {
			var err error
			switch element.Name {
			case "vertex":
				err = readVertex(values, element.Props, header.HasNormals, data)
			case "face":
				err = readFace(values, element.Props, data)
			default:
				err = skipRow(values, element.Props)
			}
			if err != nil {
				return nil, fmt.Errorf("%s %d: %w", element.Name, i, err)
			}
		}
	}

	for _, index := range data.Faces {
		if index < 0 || index >= len(data.Vertices) {
			return nil, fmt.Errorf("face index %d out of range for %d vertices", index, len(data.Vertices))
		}
	}
	return data, nil
}

func readVertex(values valueReader, props []PLYProperty, hasNormals bool, data *PLYData) error {
	var position, normal [3]float64
	for _, prop := range props {
		if prop.IsList {
			if err := skipList(values, prop); err != nil {
				return err
			}
			continue
		}
		v, err := values.scalar(prop.Type)
		if err != nil {
			return fmt.Errorf("property %s: %w", prop.Name, err)
		}
		switch prop.Name {
		case "x":
			position[0] = v
		case "y":
			position[1] = v
		case "z":
			position[2] = v
		case "nx":
			normal[0] = v
		case "ny":
			normal[1] = v
		case "nz":
			normal[2] = v
		}
	}

	data.Vertices = append(data.Vertices, core.NewVec3(position[0], position[1], position[2]))
	if hasNormals {
		data.Normals = append(data.Normals, core.NewVec3(normal[0], normal[1], normal[2]))
	}
	return nil
}

func readFace(values valueReader, props []PLYProperty, data *PLYData) error {
	for _, prop := range props {
		if !prop.IsList || (prop.Name != "vertex_indices" && prop.Name != "vertex_index") {
			if err := skipProperty(values, prop); err != nil {
				return err
			}
			continue
		}

		count, err := listLength(values, prop)
		if err != nil {
			return fmt.Errorf("vertex count: %w", err)
		}
		if count < 3 {
			return fmt.Errorf("face has %d vertices, need at least 3", count)
		}

		indices := make([]int, count)
		for j := range indices {
			v, err := values.scalar(prop.DataType)
			if err != nil {
				return fmt.Errorf("vertex index %d: %w", j, err)
			}
			indices[j] = int(v)
		}

		// Fan triangulation
		for j := 1; j+1 < len(indices); j++ {
			data.Faces = append(data.Faces, indices[0], indices[j], indices[j+1])
		}
	}
	return nil
}

func skipRow(values valueReader, props []PLYProperty) error {
	for _, prop := range props {
		if err := skipProperty(values, prop); err != nil {
			return err
		}
	}
	return nil
}

func skipProperty(values valueReader, prop PLYProperty) error {
	if prop.IsList {
		return skipList(values, prop)
	}
	_, err := values.scalar(prop.Type)
	return err
}

func skipList(values valueReader, prop PLYProperty) error {
	count, err := listLength(values, prop)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if _, err := values.scalar(prop.DataType); err != nil {
			return err
		}
	}
	return nil
}

// maxListLength caps the entries of a single list property
const maxListLength = 1 << 16

// listLength reads a list property's count, rejecting values that are not a
// non-negative integer within maxListLength
func listLength(values valueReader, prop PLYProperty) (int, error) {
	count, err := values.scalar(prop.ListType)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(count) || count < 0 || count > maxListLength || count != math.Trunc(count) {
		return 0, fmt.Errorf("invalid list length %v for %s", count, prop.Name)
	}
	return int(count), nil
}

// getTypeSize returns the size in bytes of a PLY data type, or 0 if the type is unknown
func getTypeSize(dataType string) int {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 0
	}
}

// valueReader yields successive scalar values of the body regardless of encoding
type valueReader interface {
	scalar(dataType string) (float64, error)
}

type asciiReader struct {
	scanner *bufio.Scanner
}

func newASCIIReader(r io.Reader) *asciiReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &asciiReader{scanner: scanner}
}

func (a *asciiReader) scalar(dataType string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.ParseFloat(a.scanner.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", dataType, a.scanner.Text())
	}
	return v, nil
}

type binaryReader struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (b *binaryReader) scalar(dataType string) (float64, error) {
	size := getTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}
	buf := b.buf[:size]
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return 0, err
	}

	switch dataType {
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(buf))), nil
	case "double", "float64":
		return math.Float64frombits(b.order.Uint64(buf)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(buf))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(buf)), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(buf))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(buf)), nil
	case "char", "int8":
		return float64(int8(buf[0])), nil
	default:
		return float64(buf[0]), nil
	}
}
