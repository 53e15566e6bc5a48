package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/treb-tracker/internal/adapters/compiler"
	"github.com/trebuchet-org/treb-tracker/internal/adapters/fs"
	"github.com/trebuchet-org/treb-tracker/internal/adapters/interactive"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewTrackingStoreAdapter,
	wire.Bind(new(usecase.DeploymentTracker), new(*fs.TrackingStoreAdapter)),

	fs.NewProjectConfigStoreAdapter,
	wire.Bind(new(usecase.ProjectConfigStore), new(*fs.ProjectConfigStoreAdapter)),

	fs.NewArtifactReaderAdapter,
	wire.Bind(new(usecase.ArtifactRepository), new(*fs.ArtifactReaderAdapter)),
)

// CompilerSet provides compiler implementations
var CompilerSet = wire.NewSet(
	compiler.NewResolverAdapter,
	wire.Bind(new(usecase.CompilerResolver), new(*compiler.ResolverAdapter)),

	compiler.NewRunnerAdapter,
	wire.Bind(new(usecase.CompilerRunner), new(*compiler.RunnerAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmerAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	CompilerSet,
	InteractiveSet,
)
