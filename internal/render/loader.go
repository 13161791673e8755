package render

import (
	"github.com/pkg/errors"

	"snowcity/internal/game"
)

// characterClips is the clip set the procedural character ships with.
var characterClips = []game.Clip{
	{Name: "idle", Length: 2.0},
	{Name: "walk", Length: 1.0},
	{Name: "run", Length: 0.8},
	{Name: "jump", Length: 1.2},
}

// knownModels is the catalog the procedural builder can resolve.
var knownModels = map[string]bool{
	"tower": true,
	"block": true,
	"slab":  true,
	"shop":  true,
}

// ModelLoader implements game.Loader with procedurally built models. All
// geometry here is synthesized (the renderer keeps its own prefab meshes),
// so a "load" only validates the name and assembles the clip set, but it
// still completes asynchronously like a real decode would: results land on
// the channel from a goroutine with no completion-order guarantee.
type ModelLoader struct{}

func NewModelLoader() *ModelLoader {
	return &ModelLoader{}
}

func (l *ModelLoader) LoadSkinnedModel(name string) <-chan game.SkinnedResult {
	ch := make(chan game.SkinnedResult, 1)
	go func() {
		if name != "character" {
			ch <- game.SkinnedResult{Err: errors.Errorf("unknown skinned model %q", name)}
			return
		}
		ch <- game.SkinnedResult{Model: &game.SkinnedModel{Name: name, Clips: characterClips}}
	}()
	return ch
}

func (l *ModelLoader) LoadStaticModel(name string) <-chan game.StaticResult {
	ch := make(chan game.StaticResult, 1)
	go func() {
		if !knownModels[name] {
			ch <- game.StaticResult{Err: errors.Errorf("unknown static model %q", name)}
			return
		}
		ch <- game.StaticResult{Model: &game.StaticModel{Name: name}}
	}()
	return ch
}
