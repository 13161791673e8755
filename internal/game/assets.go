package game

// Clip is one named animation track of a skinned model.
type Clip struct {
	Name   string
	Length float64 // seconds
}

// SkinnedModel is an animated character model resolved by the asset
// collaborator. The mesh itself stays on the renderer side; the simulation
// only needs the clip set.
type SkinnedModel struct {
	Name  string
	Clips []Clip
}

// StaticModel is a rigid mesh (building prefab, tile).
type StaticModel struct {
	Name string
}

type SkinnedResult struct {
	Model *SkinnedModel
	Err   error
}

type StaticResult struct {
	Model *StaticModel
	Err   error
}

// Loader resolves model names asynchronously. Each call starts one load;
// the result arrives exactly once on the returned channel. Loads are not
// cancellable and completion order across loads is unspecified. Components
// poll their channels from the tick goroutine and stay no-op until ready.
type Loader interface {
	LoadSkinnedModel(name string) <-chan SkinnedResult
	LoadStaticModel(name string) <-chan StaticResult
}
