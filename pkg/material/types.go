package material

import (
	"fmt"

	"github.com/Faultbox/assetcore/pkg/math"
)

// TextureOp defines how a texture layer is combined with the result of
// all previous layers.
type TextureOp uint32

const (
	TextureOpMultiply  TextureOp = 0x0 // T = T1 * T2
	TextureOpAdd       TextureOp = 0x1 // T = T1 + T2
	TextureOpSubtract  TextureOp = 0x2 // T = T1 - T2
	TextureOpDivide    TextureOp = 0x3 // T = T1 / T2
	TextureOpSmoothAdd TextureOp = 0x4 // T = (T1 + T2) - (T1 * T2)
	TextureOpSignedAdd TextureOp = 0x5 // T = T1 + (T2 - 0.5)
)

var textureOpNames = map[TextureOp]string{
	TextureOpMultiply:  "Multiply",
	TextureOpAdd:       "Add",
	TextureOpSubtract:  "Subtract",
	TextureOpDivide:    "Divide",
	TextureOpSmoothAdd: "SmoothAdd",
	TextureOpSignedAdd: "SignedAdd",
}

// String returns the op name.
func (o TextureOp) String() string {
	return enumName(textureOpNames, o)
}

// TextureMapMode defines how UV coordinates outside [0, 1] are handled.
type TextureMapMode uint32

const (
	MapModeWrap   TextureMapMode = 0x0 // (u % 1, v % 1)
	MapModeClamp  TextureMapMode = 0x1 // clamp to the nearest valid value
	MapModeMirror TextureMapMode = 0x2 // mirror at every integer boundary
	MapModeDecal  TextureMapMode = 0x3 // texture is not applied outside [0, 1]
)

var mapModeNames = map[TextureMapMode]string{
	MapModeWrap:   "Wrap",
	MapModeClamp:  "Clamp",
	MapModeMirror: "Mirror",
	MapModeDecal:  "Decal",
}

// String returns the mode name.
func (m TextureMapMode) String() string {
	return enumName(mapModeNames, m)
}

// TextureMapping defines how texture coordinates are generated.
type TextureMapping uint32

const (
	MappingUV       TextureMapping = 0x0
	MappingSphere   TextureMapping = 0x1
	MappingCylinder TextureMapping = 0x2
	MappingBox      TextureMapping = 0x3
	MappingPlane    TextureMapping = 0x4
	MappingOther    TextureMapping = 0x5
)

var mappingNames = map[TextureMapping]string{
	MappingUV:       "UV",
	MappingSphere:   "Sphere",
	MappingCylinder: "Cylinder",
	MappingBox:      "Box",
	MappingPlane:    "Plane",
	MappingOther:    "Other",
}

// String returns the mapping name.
func (m TextureMapping) String() string {
	return enumName(mappingNames, m)
}

// TextureType defines the purpose of a texture. It is also the semantic
// of texture-related material properties.
type TextureType uint32

const (
	TextureNone         TextureType = 0x0
	TextureDiffuse      TextureType = 0x1
	TextureSpecular     TextureType = 0x2
	TextureAmbient      TextureType = 0x3
	TextureEmissive     TextureType = 0x4
	TextureHeight       TextureType = 0x5
	TextureNormals      TextureType = 0x6
	TextureShininess    TextureType = 0x7
	TextureOpacity      TextureType = 0x8
	TextureDisplacement TextureType = 0x9
	TextureLightmap     TextureType = 0xA
	TextureReflection   TextureType = 0xB
	TextureUnknown      TextureType = 0xC
)

var textureTypeNames = map[TextureType]string{
	TextureNone:         "None",
	TextureDiffuse:      "Diffuse",
	TextureSpecular:     "Specular",
	TextureAmbient:      "Ambient",
	TextureEmissive:     "Emissive",
	TextureHeight:       "Height",
	TextureNormals:      "Normals",
	TextureShininess:    "Shininess",
	TextureOpacity:      "Opacity",
	TextureDisplacement: "Displacement",
	TextureLightmap:     "Lightmap",
	TextureReflection:   "Reflection",
	TextureUnknown:      "Unknown",
}

// String returns the texture type name.
func (t TextureType) String() string {
	return enumName(textureTypeNames, t)
}

// ParseTextureType parses a texture type name, case-insensitively.
func ParseTextureType(s string) (TextureType, error) {
	return parseEnum(textureTypeNames, s)
}

// ShadingMode defines the lighting model a material asks for.
type ShadingMode uint32

const (
	ShadingFlat         ShadingMode = 0x1
	ShadingGouraud      ShadingMode = 0x2
	ShadingPhong        ShadingMode = 0x3
	ShadingBlinn        ShadingMode = 0x4
	ShadingToon         ShadingMode = 0x5
	ShadingOrenNayar    ShadingMode = 0x6
	ShadingMinnaert     ShadingMode = 0x7
	ShadingCookTorrance ShadingMode = 0x8
	ShadingNoShading    ShadingMode = 0x9
	ShadingFresnel      ShadingMode = 0xA
)

var shadingNames = map[ShadingMode]string{
	ShadingFlat:         "Flat",
	ShadingGouraud:      "Gouraud",
	ShadingPhong:        "Phong",
	ShadingBlinn:        "Blinn",
	ShadingToon:         "Toon",
	ShadingOrenNayar:    "OrenNayar",
	ShadingMinnaert:     "Minnaert",
	ShadingCookTorrance: "CookTorrance",
	ShadingNoShading:    "NoShading",
	ShadingFresnel:      "Fresnel",
}

// String returns the shading mode name.
func (s ShadingMode) String() string {
	return enumName(shadingNames, s)
}

// TextureFlags are per-texture bit flags.
type TextureFlags uint32

const (
	// FlagInvert inverts the texture color: C' = 1 - C.
	FlagInvert TextureFlags = 0x1
	// FlagUseAlpha forces the texture's alpha channel to be used.
	FlagUseAlpha TextureFlags = 0x2
	// FlagIgnoreAlpha disables the texture's alpha channel.
	FlagIgnoreAlpha TextureFlags = 0x4
)

// BlendMode defines how a material is blended with the framebuffer.
type BlendMode uint32

const (
	// BlendDefault is SourceColor*SourceAlpha + DestColor*(1-SourceAlpha).
	BlendDefault BlendMode = 0x0
	// BlendAdditive is SourceColor*1 + DestColor*1.
	BlendAdditive BlendMode = 0x1
)

// UVTransform describes how UV coordinates of a texture are transformed.
// Rotation is counter-clockwise in radians about (0.5, 0.5).
type UVTransform struct {
	Translation math.Vec2
	Scaling     math.Vec2
	Rotation    float32
}

// DefaultUVTransform returns the identity UV transform.
func DefaultUVTransform() UVTransform {
	return UVTransform{Scaling: math.Vec2{X: 1, Y: 1}}
}

// PropertyTypeInfo describes the layout of a property's data buffer.
type PropertyTypeInfo uint32

const (
	TypeFloat   PropertyTypeInfo = 0x1
	TypeString  PropertyTypeInfo = 0x3
	TypeInteger PropertyTypeInfo = 0x4
	TypeBuffer  PropertyTypeInfo = 0x5
)

var typeInfoNames = map[PropertyTypeInfo]string{
	TypeFloat:   "Float",
	TypeString:  "String",
	TypeInteger: "Integer",
	TypeBuffer:  "Buffer",
}

// String returns the type name.
func (p PropertyTypeInfo) String() string {
	return enumName(typeInfoNames, p)
}

func enumName[E ~uint32](names map[E]string, v E) string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("Unknown(%d)", uint32(v))
}
