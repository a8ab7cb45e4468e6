package engine

// Register all language profiles.
import (
	_ "github.com/codegauge/codegauge/internal/profiles/cpp"
	_ "github.com/codegauge/codegauge/internal/profiles/generic"
	_ "github.com/codegauge/codegauge/internal/profiles/golang"
	_ "github.com/codegauge/codegauge/internal/profiles/java"
	_ "github.com/codegauge/codegauge/internal/profiles/javascript"
	_ "github.com/codegauge/codegauge/internal/profiles/python"
)
