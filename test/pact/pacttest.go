//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "shelter-adoption-api"
	ConsumerName = "shelter-kiosk"

	StateDefaultCatalog     = "the default shelter catalog is loaded"
	StateCatalogUnavailable = "the shelter catalog is unavailable"
)

// Decision request fixtures shared by the consumer and provider.
const (
	SplitFirstItems  = "RATO,BOLA"
	SplitSecondItems = "RATO,NOVELO"
	SplitAnimals     = "Rex,Fofo"

	CompanionFirstItems  = "SKATE,RATO"
	CompanionSecondItems = "RATO,BOLA"
	CompanionAnimals     = "Loco,Rex"

	UnknownAnimal = "Lulu"
)

// ExpectedSplitDecisions is the provider answer for the Split* fixture.
func ExpectedSplitDecisions() []string {
	return []string{"Fofo - shelter", "Rex - person 1"}
}

// ExpectedCompanionDecisions is the provider answer for the Companion* fixture.
func ExpectedCompanionDecisions() []string {
	return []string{"Loco - person 1", "Rex - person 2"}
}

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the kiosk consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
