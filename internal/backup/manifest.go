package backup

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"
)

// Kind tells whether a manifest item points at a file or a directory.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

// Item is a single manifest entry, relative to the installation root.
type Item struct {
	RelPath string
	Kind    Kind
}

// DestPrefix is the fixed name prefix of every backup directory.
const DestPrefix = "fmeFlowConfigBackup"

// timeLayout formats the destination timestamp to second precision.
const timeLayout = "20060102_150405"

// Manifest returns the fixed list of configuration locations that get
// backed up on every run, in copy order. The list is fixed at build time.
func Manifest() []Item {
	return []Item{
		{RelPath: filepath.Join("Utilities", "tomcat", "conf"), Kind: KindDir},
		{RelPath: filepath.Join("Server", "fmeFlowConfig"), Kind: KindDir},
		{RelPath: filepath.Join("Server", "fmeFlowConfig.txt"), Kind: KindFile},
		{RelPath: filepath.Join("Server", "fmeCommonConfig.txt"), Kind: KindFile},
		{RelPath: filepath.Join("Server", "fmeFlowWebApplicationConfig.txt"), Kind: KindFile},
		{RelPath: filepath.Join("Server", "fmeWebSocketConfig.txt"), Kind: KindFile},
	}
}

// SourcePaths joins the installation root with every manifest entry, in
// manifest order. No existence checks happen here; entries may be absent
// on disk.
func SourcePaths(root string) []string {
	items := Manifest()
	paths := make([]string, 0, len(items))
	for _, item := range items {
		paths = append(paths, filepath.Join(root, item.RelPath))
	}
	return paths
}

// DestName builds the destination directory name for a run started at t.
func DestName(t time.Time) string {
	return fmt.Sprintf("%s_%s", DestPrefix, t.Format(timeLayout))
}

// DefaultRoot returns the installation root offered by the interactive
// prompt when none was supplied.
func DefaultRoot() string {
	if runtime.GOOS == "windows" {
		return `C:\Program Files\FMEFlow`
	}
	return "/opt/fmeflow"
}
