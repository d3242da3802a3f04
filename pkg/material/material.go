// Package material mirrors the material layout of an imported scene:
// key/value properties plus the enums that give texture properties their
// meaning.
package material

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// Standard property keys. Texture keys are qualified by a TextureType
// semantic and an index.
const (
	KeyName              = "?mat.name"
	KeyTwoSided          = "$mat.twosided"
	KeyShadingModel      = "$mat.shadingm"
	KeyEnableWireframe   = "$mat.wireframe"
	KeyBlendFunc         = "$mat.blend"
	KeyOpacity           = "$mat.opacity"
	KeyBumpScaling       = "$mat.bumpscaling"
	KeyShininess         = "$mat.shininess"
	KeyReflectivity      = "$mat.reflectivity"
	KeyShininessStrength = "$mat.shinpercent"
	KeyRefracti          = "$mat.refracti"
	KeyColorDiffuse      = "$clr.diffuse"
	KeyColorAmbient      = "$clr.ambient"
	KeyColorSpecular     = "$clr.specular"
	KeyColorEmissive     = "$clr.emissive"
	KeyColorTransparent  = "$clr.transparent"
	KeyColorReflective   = "$clr.reflective"
	KeyGlobalBackground  = "?bg.global"

	KeyTextureBase     = "$tex.file"
	KeyUVWSrcBase      = "$tex.uvwsrc"
	KeyTexOpBase       = "$tex.op"
	KeyMappingBase     = "$tex.mapping"
	KeyTexBlendBase    = "$tex.blend"
	KeyMappingModeU    = "$tex.mapmodeu"
	KeyMappingModeV    = "$tex.mapmodev"
	KeyTexMapAxisBase  = "$tex.mapaxis"
	KeyUVTransformBase = "$tex.uvtrafo"
	KeyTexFlagsBase    = "$tex.flags"
)

// Material errors.
var (
	ErrPropertyNotFound  = errors.New("material property not found")
	ErrPropertyType      = errors.New("material property has a different type")
	ErrTruncatedProperty = errors.New("material property data is truncated")
)

// Property is a single material key/value pair. Data holds the raw value
// laid out according to Type.
type Property struct {
	Key string
	// Semantic is the texture usage for texture properties, TextureNone
	// otherwise.
	Semantic TextureType
	// Index is the texture index for texture properties, 0 otherwise.
	Index uint32
	Type  PropertyTypeInfo
	Data  []byte
}

// NewStringProperty encodes value in the native string layout: a
// little-endian uint32 length, the bytes, and a terminating NUL.
func NewStringProperty(key string, semantic TextureType, index uint32, value string) *Property {
	data := make([]byte, 4+len(value)+1)
	binary.LittleEndian.PutUint32(data, uint32(len(value)))
	copy(data[4:], value)
	return &Property{Key: key, Semantic: semantic, Index: index, Type: TypeString, Data: data}
}

// StringValue decodes a TypeString property.
func (p *Property) StringValue() (string, error) {
	if p.Type != TypeString {
		return "", fmt.Errorf("%w: %s is %s", ErrPropertyType, p.Key, p.Type)
	}
	if len(p.Data) < 4 {
		return "", fmt.Errorf("%w: %s", ErrTruncatedProperty, p.Key)
	}
	n := binary.LittleEndian.Uint32(p.Data)
	if uint64(n) > uint64(len(p.Data)-4) {
		return "", fmt.Errorf("%w: %s declares %d bytes, has %d", ErrTruncatedProperty, p.Key, n, len(p.Data)-4)
	}
	return string(p.Data[4 : 4+n]), nil
}

// Material is a list of properties.
type Material struct {
	Properties []*Property
}

// Property returns the property matching key, semantic and index exactly,
// or nil.
func (m *Material) Property(key string, semantic TextureType, index uint32) *Property {
	for _, p := range m.Properties {
		if p != nil && p.Key == key && p.Semantic == semantic && p.Index == index {
			return p
		}
	}
	return nil
}

// Name returns the material name, or "" when it has none.
func (m *Material) Name() string {
	p := m.Property(KeyName, TextureNone, 0)
	if p == nil {
		return ""
	}
	name, err := p.StringValue()
	if err != nil {
		return ""
	}
	return name
}

// TexturePath returns the file path of the index-th texture of type tt.
func (m *Material) TexturePath(tt TextureType, index uint32) (string, error) {
	p := m.Property(KeyTextureBase, tt, index)
	if p == nil {
		return "", fmt.Errorf("%w: %s texture %d", ErrPropertyNotFound, tt, index)
	}
	return p.StringValue()
}

// TextureCount returns the number of texture slots of type tt, i.e. the
// highest texture index present plus one.
func (m *Material) TextureCount(tt TextureType) int {
	count := 0
	for _, p := range m.Properties {
		if p != nil && p.Key == KeyTextureBase && p.Semantic == tt && int(p.Index) >= count {
			count = int(p.Index) + 1
		}
	}
	return count
}

func parseEnum[E ~uint32](names map[E]string, s string) (E, error) {
	want := strings.TrimSpace(s)
	for v, n := range names {
		if strings.EqualFold(n, want) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown value %q", s)
}
