package shell

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/cutline/internal/ui"
)

//go:embed default_layout.yaml
var defaultLayoutYAML []byte

// Layout errors.
var (
	ErrBadLayout = errors.New("invalid layout document")
)

// Layout is the declarative panel arrangement for the main window.
type Layout struct {
	Root *LayoutNode `yaml:"root"`
}

// LayoutNode is either a panel leaf or a splitter. Exactly one of the
// two fields must be set.
type LayoutNode struct {
	Panel    *PanelSpec    `yaml:"panel,omitempty"`
	Splitter *SplitterSpec `yaml:"splitter,omitempty"`
}

// PanelSpec describes one titled panel with placeholder content.
type PanelSpec struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Content string `yaml:"content,omitempty"`
}

// SplitterSpec describes a two-pane split.
type SplitterSpec struct {
	Orientation string      `yaml:"orientation"`
	Ratio       float64     `yaml:"ratio"`
	First       *LayoutNode `yaml:"first"`
	Second      *LayoutNode `yaml:"second"`
}

// DefaultLayout returns the built-in layout document.
func DefaultLayout() (*Layout, error) {
	return parseLayout(defaultLayoutYAML)
}

// LoadLayout reads a layout document from disk. An empty path returns
// the built-in layout.
func LoadLayout(path string) (*Layout, error) {
	if path == "" {
		return DefaultLayout()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", path, err)
	}
	layout, err := parseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return layout, nil
}

func parseLayout(data []byte) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLayout, err)
	}
	if layout.Root == nil {
		return nil, fmt.Errorf("%w: missing root", ErrBadLayout)
	}
	if err := validateNode(layout.Root); err != nil {
		return nil, err
	}
	return &layout, nil
}

func validateNode(node *LayoutNode) error {
	switch {
	case node.Panel != nil && node.Splitter != nil:
		return fmt.Errorf("%w: node is both panel and splitter", ErrBadLayout)
	case node.Panel != nil:
		if node.Panel.ID == "" {
			return fmt.Errorf("%w: panel without id", ErrBadLayout)
		}
		return nil
	case node.Splitter != nil:
		sp := node.Splitter
		if sp.Orientation != "horizontal" && sp.Orientation != "vertical" {
			return fmt.Errorf("%w: splitter orientation %q", ErrBadLayout, sp.Orientation)
		}
		if sp.Ratio <= 0 || sp.Ratio >= 1 {
			return fmt.Errorf("%w: splitter ratio %v", ErrBadLayout, sp.Ratio)
		}
		if sp.First == nil || sp.Second == nil {
			return fmt.Errorf("%w: splitter missing a pane", ErrBadLayout)
		}
		if err := validateNode(sp.First); err != nil {
			return err
		}
		return validateNode(sp.Second)
	default:
		return fmt.Errorf("%w: empty node", ErrBadLayout)
	}
}

// buildLayout turns a validated layout into a widget tree, collecting
// the panels by id.
func buildLayout(layout *Layout) (ui.Widget, map[string]*ui.Panel) {
	panels := make(map[string]*ui.Panel)
	root := buildNode(layout.Root, panels)
	return root, panels
}

func buildNode(node *LayoutNode, panels map[string]*ui.Panel) ui.Widget {
	if node.Panel != nil {
		content := ui.NewLabel(node.Panel.Content)
		panel := ui.NewPanel(node.Panel.Title, content)
		panels[node.Panel.ID] = panel
		return panel
	}

	sp := node.Splitter
	first := buildNode(sp.First, panels)
	second := buildNode(sp.Second, panels)
	if sp.Orientation == "vertical" {
		return ui.NewVSplitter(first, second, sp.Ratio)
	}
	return ui.NewHSplitter(first, second, sp.Ratio)
}
