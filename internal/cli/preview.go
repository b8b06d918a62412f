package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaid/pkg/errors"
	"github.com/matzehuels/mermaid/pkg/pipeline"
)

// previewDebounce collapses editor write bursts into one re-render.
// Most editors fire several events per save (write, chmod, rename).
const previewDebounce = 100 * time.Millisecond

// newPreviewCmd creates the preview command: a terminal view of the
// rendered Mermaid text that refreshes whenever the manifest is saved.
func newPreviewCmd() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "preview <manifest>",
		Short: "Live-preview a manifest in the terminal",
		Long: `Preview watches a manifest file and re-renders the Mermaid text on
every save. Press r to force a refresh and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), args[0], noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the file cache")

	return cmd
}

func runPreview(ctx context.Context, path string, noCache bool) error {
	if errors.IsURL(path) {
		return fmt.Errorf("preview watches local files, not URLs")
	}

	runner, err := newRunner(noCache, discardLogger())
	if err != nil {
		return err
	}
	defer runner.Close()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors replace files on save, which drops inode-level watches.
	// Watching the directory and filtering by name survives that.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	p := tea.NewProgram(newPreviewModel(path, runner, watcher), tea.WithContext(ctx), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// =============================================================================
// previewModel - Live terminal preview
// =============================================================================

// previewRenderedMsg carries the outcome of one pipeline run.
type previewRenderedMsg struct {
	text  string
	kind  string
	nodes int
	edges int
	err   error
	at    time.Time
}

// previewChangedMsg signals that the watched file was modified.
type previewChangedMsg struct{}

// previewModel is the bubbletea model for the live preview.
type previewModel struct {
	path    string
	runner  *pipeline.Runner
	watcher *fsnotify.Watcher

	text  string
	kind  string
	nodes int
	edges int
	err   error
	last  time.Time

	width  int
	height int
}

func newPreviewModel(path string, runner *pipeline.Runner, watcher *fsnotify.Watcher) previewModel {
	return previewModel{path: path, runner: runner, watcher: watcher}
}

func (m previewModel) Init() tea.Cmd {
	return tea.Batch(m.render(), m.waitForChange())
}

// render runs the pipeline once and reports the outcome. Logging is
// discarded while the TUI owns the terminal.
func (m previewModel) render() tea.Cmd {
	return func() tea.Msg {
		result, err := m.runner.Execute(context.Background(), pipeline.Options{
			Source: m.path,
			Logger: discardLogger(),
		})
		if err != nil {
			return previewRenderedMsg{err: err, at: time.Now()}
		}
		return previewRenderedMsg{
			text:  result.Text,
			kind:  string(result.Kind),
			nodes: result.Stats.NodeCount,
			edges: result.Stats.EdgeCount,
			at:    time.Now(),
		}
	}
}

// waitForChange blocks until the watched file changes, then drains the
// burst of events an editor save produces before reporting once.
func (m previewModel) waitForChange() tea.Cmd {
	return func() tea.Msg {
		base := filepath.Base(m.path)
		for {
			select {
			case event, ok := <-m.watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				timer := time.NewTimer(previewDebounce)
				for {
					select {
					case <-m.watcher.Events:
					case <-timer.C:
						return previewChangedMsg{}
					}
				}
			case _, ok := <-m.watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, m.render()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case previewChangedMsg:
		return m, tea.Batch(m.render(), m.waitForChange())
	case previewRenderedMsg:
		m.err = msg.err
		m.last = msg.at
		if msg.err == nil {
			m.text = msg.text
			m.kind = msg.kind
			m.nodes = msg.nodes
			m.edges = msg.edges
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(filepath.Base(m.path)))
	if m.kind != "" {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  %s · %d nodes · %d edges", m.kind, m.nodes, m.edges)))
	}
	b.WriteString("\n\n")

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDim).
		Padding(0, 1)
	if m.width > 4 {
		frame = frame.Width(m.width - 2)
	}

	content := strings.TrimRight(m.text, "\n")
	if m.err != nil {
		content = StyleWarning.Render(m.err.Error())
	}
	if content == "" {
		content = StyleDim.Render("rendering...")
	}
	b.WriteString(frame.Render(content))
	b.WriteString("\n\n")

	status := "rendering..."
	if !m.last.IsZero() {
		status = "rendered " + m.last.Format("15:04:05")
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s · r refresh · q quit · watching %s", status, m.path)))
	b.WriteString("\n")

	return b.String()
}
