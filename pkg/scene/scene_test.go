package scene

import (
	gomath "math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/assetcore/pkg/anim"
	"github.com/Faultbox/assetcore/pkg/math"
)

func restAt(x, y, z float32) anim.Transform {
	tr := anim.IdentityTransform()
	tr.Position = math.Vec3{X: x, Y: y, Z: z}
	return tr
}

func testScene() *Scene {
	hand := &Node{Name: "Hand", Rest: restAt(0, 2, 0)}
	arm := &Node{Name: "Arm", Rest: restAt(1, 0, 0), Children: []*Node{hand}}
	head := &Node{Name: "Head", Rest: restAt(0, 5, 0), Meshes: []int{0, 1}}
	root := &Node{Name: "Root", Rest: anim.IdentityTransform(), Children: []*Node{arm, head}}

	face := func() *Mesh {
		return &Mesh{
			Name:       "Face",
			Vertices:   []math.Vec3{{}, {X: 1}, {Y: 1}},
			AnimMeshes: []AnimMesh{{Name: "neutral"}, {Name: "smile"}, {Name: "frown"}},
		}
	}

	return &Scene{
		Root:   root,
		Meshes: []*Mesh{face(), face(), {Name: "Body"}},
		Animations: []*anim.Animation{
			{
				Name:     "wave",
				Duration: 10,
				Channels: []*anim.NodeAnim{
					{
						Name: "Arm",
						PositionKeys: []anim.VectorKey{
							{Time: 0, Value: math.Vec3{X: 1}},
							{Time: 10, Value: math.Vec3{X: 5}},
						},
					},
					{Name: "Ghost", PositionKeys: []anim.VectorKey{{Time: 0, Value: math.Vec3{X: 99}}}},
					nil,
				},
				MeshChannels: []*anim.MeshAnim{
					{Name: "Face", Keys: []anim.MeshKey{{Time: 0, Value: 0}, {Time: 4, Value: 2}}},
					{Name: "Body"},
				},
			},
		},
	}
}

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestFindNode(t *testing.T) {
	s := testScene()

	hand := s.FindNode("Hand")
	require.NotNil(t, hand)
	assert.Same(t, s.Root.Children[0].Children[0], hand)
	assert.Same(t, s.Root, s.FindNode("Root"))
	assert.Nil(t, s.FindNode("hand"))
	assert.Nil(t, (&Scene{}).FindNode("Root"))
}

func TestFindAnimation(t *testing.T) {
	s := testScene()

	assert.Same(t, s.Animations[0], s.FindAnimation("wave"))
	assert.Nil(t, s.FindAnimation("run"))
}

func TestWalkOrder(t *testing.T) {
	s := testScene()

	var names []string
	s.Walk(func(n, parent *Node) bool {
		names = append(names, n.Name)
		if n.Name == "Root" {
			assert.Nil(t, parent)
		}
		return n.Name != "Arm"
	})

	assert.Equal(t, []string{"Root", "Arm", "Head"}, names)
	assert.Equal(t, 4, s.NodeCount())
}

func TestRestPoseFirstNameWins(t *testing.T) {
	s := testScene()
	s.Root.Children[1].Children = []*Node{{Name: "Arm", Rest: restAt(7, 7, 7)}}

	pose := s.RestPose()
	assert.Len(t, pose, 4)
	assert.Equal(t, restAt(1, 0, 0), pose["Arm"])
}

func TestSamplerPose(t *testing.T) {
	s := testScene()
	log, logs := observed()
	sampler := NewSampler(s, log, 0)

	pose := sampler.Pose(s.Animations[0], 5)

	assert.Equal(t, math.Vec3{X: 3}, pose["Arm"].Position)
	assert.Equal(t, restAt(0, 2, 0), pose["Hand"], "unanimated nodes keep their rest pose")
	assert.NotContains(t, pose, "Ghost")
	assert.Equal(t, 1, logs.FilterMessage("channel targets unknown node").Len())
}

func TestSamplerPoseFailureHoldsRest(t *testing.T) {
	s := testScene()
	log, logs := observed()
	sampler := NewSampler(s, log, 0)

	pose := sampler.Pose(s.Animations[0], gomath.NaN())

	assert.Equal(t, s.RestPose(), pose)
	failures := logs.FilterMessage("sampling channel failed, holding rest pose")
	require.Equal(t, 1, failures.Len())
	assert.Equal(t, "Arm", failures.All()[0].ContextMap()["node"])
}

func TestSamplerPoseAt(t *testing.T) {
	s := testScene()
	sampler := NewSampler(s, nil, 10)

	// 0.5s at the default 10 ticks per second is tick 5.
	pose := sampler.PoseAt(s.Animations[0], 0.5)
	assert.Equal(t, math.Vec3{X: 3}, pose["Arm"].Position)

	s.Animations[0].TicksPerSecond = 20
	pose = sampler.PoseAt(s.Animations[0], 0.25)
	assert.Equal(t, math.Vec3{X: 3}, pose["Arm"].Position)
}

func TestSamplerMorphTargets(t *testing.T) {
	s := testScene()
	log, logs := observed()
	sampler := NewSampler(s, log, 0)

	active := sampler.MorphTargets(s.Animations[0], 5)

	// Both meshes named Face follow the single Face channel; Body's
	// channel has no keys.
	assert.Equal(t, map[int]uint32{0: 2, 1: 2}, active)
	assert.Equal(t, 1, logs.FilterMessage("sampling mesh channel failed").Len())

	active = sampler.MorphTargets(s.Animations[0], 1)
	assert.Equal(t, map[int]uint32{0: 0, 1: 0}, active)
}

func TestSamplerMorphTargetsMissingVariant(t *testing.T) {
	s := testScene()
	s.Meshes[1].AnimMeshes = s.Meshes[1].AnimMeshes[:1]
	log, logs := observed()

	active := NewSampler(s, log, 0).MorphTargets(s.Animations[0], 5)

	assert.Equal(t, map[int]uint32{0: 2}, active)
	assert.Equal(t, 1, logs.FilterMessage("mesh channel selects a missing anim mesh").Len())
}

func TestWorldTransforms(t *testing.T) {
	s := testScene()
	sampler := NewSampler(s, nil, 0)

	world := s.WorldTransforms(sampler.Pose(s.Animations[0], 5))

	require.Len(t, world, 4)
	assert.Equal(t, math.Identity(), world["Root"])
	assert.True(t, world["Arm"].Translation().ApproxEqual(math.Vec3{X: 3}, 1e-6))
	assert.True(t, world["Hand"].Translation().ApproxEqual(math.Vec3{X: 3, Y: 2}, 1e-6))
	assert.True(t, world["Head"].Translation().ApproxEqual(math.Vec3{Y: 5}, 1e-6))
}

func TestWorldTransformsRotatedParent(t *testing.T) {
	child := &Node{Name: "Child", Rest: restAt(1, 0, 0)}
	root := &Node{Name: "Root", Rest: anim.IdentityTransform(), Children: []*Node{child}}
	root.Rest.Rotation = math.QuatFromAxisAngle(math.Vec3{Z: 1}, gomath.Pi/2)
	s := &Scene{Root: root}

	world := s.WorldTransforms(nil)

	assert.True(t, world["Child"].Translation().ApproxEqual(math.Vec3{Y: 1}, 1e-5))
}

func TestSamplerConcurrentUse(t *testing.T) {
	s := testScene()
	sampler := NewSampler(s, nil, 0)
	a := s.Animations[0]

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(tick float64) {
			defer wg.Done()
			pose := sampler.Pose(a, tick)
			want := 1 + 4*tick/10
			assert.InDelta(t, want, pose["Arm"].Position.X, 1e-5)
			sampler.MorphTargets(a, tick)
		}(float64(i))
	}
	wg.Wait()
}
