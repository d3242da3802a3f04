// Package scenedoc reads scene description documents: YAML files that
// spell out a node hierarchy, meshes, materials and animations. They are
// used for fixtures and by animtool, not as an interchange format.
package scenedoc

import (
	"github.com/Faultbox/assetcore/pkg/anim"
)

// Document is the top level of a scene description.
type Document struct {
	// PostProcess names the steps recorded as applied, e.g. "Triangulate".
	PostProcess []string       `yaml:"postprocess,omitempty"`
	Root        *NodeDoc       `yaml:"root"`
	Meshes      []MeshDoc      `yaml:"meshes,omitempty"`
	Materials   []MaterialDoc  `yaml:"materials,omitempty"`
	Animations  []AnimationDoc `yaml:"animations,omitempty"`
}

// NodeDoc describes a node. Omitted rotation and scaling default to
// identity. Rotation is x, y, z, w.
type NodeDoc struct {
	Name     string      `yaml:"name"`
	Position *[3]float32 `yaml:"position,omitempty"`
	Rotation *[4]float32 `yaml:"rotation,omitempty"`
	Scaling  *[3]float32 `yaml:"scaling,omitempty"`
	Meshes   []int       `yaml:"meshes,omitempty"`
	Children []*NodeDoc  `yaml:"children,omitempty"`
}

type MeshDoc struct {
	Name       string        `yaml:"name"`
	Material   int           `yaml:"material"`
	Vertices   [][3]float32  `yaml:"vertices,omitempty"`
	Normals    [][3]float32  `yaml:"normals,omitempty"`
	AnimMeshes []AnimMeshDoc `yaml:"anim_meshes,omitempty"`
}

type AnimMeshDoc struct {
	Name     string       `yaml:"name"`
	Vertices [][3]float32 `yaml:"vertices,omitempty"`
	Normals  [][3]float32 `yaml:"normals,omitempty"`
	Weight   float32      `yaml:"weight,omitempty"`
}

type MaterialDoc struct {
	Name     string       `yaml:"name"`
	Textures []TextureDoc `yaml:"textures,omitempty"`
}

// TextureDoc binds a texture file to a usage, e.g. type "diffuse".
type TextureDoc struct {
	Type  string `yaml:"type"`
	Index uint32 `yaml:"index,omitempty"`
	Path  string `yaml:"path"`
}

type AnimationDoc struct {
	Name           string           `yaml:"name"`
	Duration       float64          `yaml:"duration"`
	TicksPerSecond float64          `yaml:"ticks_per_second,omitempty"`
	Channels       []ChannelDoc     `yaml:"channels,omitempty"`
	MeshChannels   []MeshChannelDoc `yaml:"mesh_channels,omitempty"`
}

// ChannelDoc animates one node. Pre and post take behaviour names:
// default, constant, linear or repeat.
type ChannelDoc struct {
	Node     string         `yaml:"node"`
	Pre      anim.Behaviour `yaml:"pre,omitempty"`
	Post     anim.Behaviour `yaml:"post,omitempty"`
	Position []VectorKeyDoc `yaml:"position,omitempty"`
	Rotation []QuatKeyDoc   `yaml:"rotation,omitempty"`
	Scaling  []VectorKeyDoc `yaml:"scaling,omitempty"`
}

type VectorKeyDoc struct {
	Time  float64    `yaml:"time"`
	Value [3]float32 `yaml:"value"`
}

type QuatKeyDoc struct {
	Time  float64    `yaml:"time"`
	Value [4]float32 `yaml:"value"`
}

type MeshChannelDoc struct {
	Mesh string       `yaml:"mesh"`
	Keys []MeshKeyDoc `yaml:"keys,omitempty"`
}

type MeshKeyDoc struct {
	Time    float64 `yaml:"time"`
	Variant uint32  `yaml:"variant"`
}
