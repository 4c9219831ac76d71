package shortcut

// commandDef describes one default command registration.
type commandDef struct {
	id       string
	name     string
	category string
	combos   []string
	fixed    bool
}

// Command categories.
const (
	CategoryPlayback   = "Playback"
	CategoryEditing    = "Editing"
	CategorySelection  = "Selection"
	CategoryNavigation = "Navigation"
	CategoryTimeline   = "Timeline"
	CategoryTools      = "Tools"
	CategoryWindow     = "Window"
	CategoryFile       = "File"
	CategoryView       = "View"
)

// defaultCommands is the factory command set. Binding order within a
// command is meaningful and preserved.
var defaultCommands = []commandDef{
	// Playback: J/K/L transport plus marks
	{"playback.playPause", "Play/Pause", CategoryPlayback, []string{"Space"}, false},
	{"playback.stop", "Stop", CategoryPlayback, []string{"K"}, false},
	{"playback.playBackward", "Play Backward", CategoryPlayback, []string{"J"}, false},
	{"playback.playForward", "Play Forward", CategoryPlayback, []string{"L"}, false},
	{"playback.shuttleSlowBackward", "Shuttle Slow Backward", CategoryPlayback, []string{"Shift+J"}, false},
	{"playback.shuttleSlowForward", "Shuttle Slow Forward", CategoryPlayback, []string{"Shift+L"}, false},
	{"playback.shuttleFastBackward", "Shuttle Fast Backward", CategoryPlayback, []string{"Ctrl+J"}, false},
	{"playback.shuttleFastForward", "Shuttle Fast Forward", CategoryPlayback, []string{"Ctrl+L"}, false},
	{"playback.stepBackward", "Step Backward One Frame", CategoryPlayback, []string{"Left"}, false},
	{"playback.stepForward", "Step Forward One Frame", CategoryPlayback, []string{"Right"}, false},
	{"playback.stepBackward10", "Step Backward 10 Frames", CategoryPlayback, []string{"Shift+Left"}, false},
	{"playback.stepForward10", "Step Forward 10 Frames", CategoryPlayback, []string{"Shift+Right"}, false},
	{"playback.goToBeginning", "Go to Beginning", CategoryPlayback, []string{"Home"}, false},
	{"playback.goToEnd", "Go to End", CategoryPlayback, []string{"End"}, false},
	{"playback.markIn", "Mark In", CategoryPlayback, []string{"I"}, false},
	{"playback.markOut", "Mark Out", CategoryPlayback, []string{"O"}, false},
	{"playback.clearInOut", "Clear In/Out", CategoryPlayback, []string{"Alt+X"}, false},

	// Editing
	{"edit.splitClip", "Split Clip at Playhead", CategoryEditing, []string{"Ctrl+B"}, false},
	{"edit.deleteClip", "Delete Selected Clips", CategoryEditing, []string{"Del"}, false},
	{"edit.rippleDelete", "Ripple Delete", CategoryEditing, []string{"Shift+Del"}, false},
	{"edit.copy", "Copy", CategoryEditing, []string{"Ctrl+C"}, false},
	{"edit.cut", "Cut", CategoryEditing, []string{"Ctrl+X"}, false},
	{"edit.paste", "Paste", CategoryEditing, []string{"Ctrl+V"}, false},
	{"edit.undo", "Undo", CategoryEditing, []string{"Ctrl+Z"}, false},
	{"edit.redo", "Redo", CategoryEditing, []string{"Ctrl+Shift+Z"}, false},
	{"edit.matchFrame", "Match Frame", CategoryEditing, []string{"F"}, false},
	{"edit.insertEdit", "Insert Edit", CategoryEditing, []string{","}, false},
	{"edit.overwriteEdit", "Overwrite Edit", CategoryEditing, []string{"."}, false},

	// Selection
	{"select.all", "Select All", CategorySelection, []string{"Ctrl+A"}, false},
	{"select.none", "Deselect All", CategorySelection, []string{"Ctrl+Shift+A"}, false},
	{"select.nextClip", "Select Next Clip", CategorySelection, []string{"Down"}, false},
	{"select.previousClip", "Select Previous Clip", CategorySelection, []string{"Up"}, false},
	{"select.nextEdit", "Select Next Edit Point", CategorySelection, []string{"Ctrl+Right"}, false},
	{"select.previousEdit", "Select Previous Edit Point", CategorySelection, []string{"Ctrl+Left"}, false},
	{"select.track", "Select Entire Track", CategorySelection, []string{"Ctrl+T"}, false},

	// Navigation
	{"nav.nextEdit", "Next Edit Point", CategoryNavigation, []string{"E"}, false},
	{"nav.previousEdit", "Previous Edit Point", CategoryNavigation, []string{"Shift+E"}, false},
	{"nav.nextTab", "Next Tab", CategoryNavigation, []string{"Ctrl+Tab"}, false},
	{"nav.previousTab", "Previous Tab", CategoryNavigation, []string{"Ctrl+Shift+Tab"}, false},

	// Timeline
	{"timeline.zoomIn", "Zoom In", CategoryTimeline, []string{"+", "Ctrl+="}, false},
	{"timeline.zoomOut", "Zoom Out", CategoryTimeline, []string{"-"}, false},
	{"timeline.zoomToFit", "Zoom to Fit", CategoryTimeline, []string{"Shift+Z"}, false},
	{"timeline.nextTrack", "Next Track", CategoryTimeline, []string{"Alt+Down"}, false},
	{"timeline.previousTrack", "Previous Track", CategoryTimeline, []string{"Alt+Up"}, false},

	// Tools
	{"tool.blade", "Blade Tool", CategoryTools, []string{"B"}, false},
	{"tool.selection", "Selection Tool", CategoryTools, []string{"V"}, false},
	{"tool.arrow", "Arrow Tool", CategoryTools, []string{"A"}, false},
	{"tool.hand", "Hand Tool", CategoryTools, []string{"H"}, false},
	{"tool.zoom", "Zoom Tool", CategoryTools, []string{"Z"}, false},

	// Window
	{"window.toggleTimeline", "Toggle Timeline", CategoryWindow, []string{"Ctrl+1"}, false},
	{"window.toggleViewer", "Toggle Viewer", CategoryWindow, []string{"Ctrl+2"}, false},
	{"window.toggleInspector", "Toggle Inspector", CategoryWindow, []string{"Ctrl+3"}, false},
	{"window.toggleMediaPool", "Toggle Media Pool", CategoryWindow, []string{"Ctrl+4"}, false},
	{"window.shortcutEditor", "Keyboard Shortcuts...", CategoryWindow, []string{"Ctrl+Alt+K"}, true},

	// File
	{"file.new", "New Project", CategoryFile, []string{"Ctrl+N"}, false},
	{"file.open", "Open Project...", CategoryFile, []string{"Ctrl+O"}, false},
	{"file.save", "Save Project", CategoryFile, []string{"Ctrl+S"}, false},
	{"file.import", "Import Media...", CategoryFile, []string{"Ctrl+I"}, false},

	// View
	{"view.zoomIn", "Viewer Zoom In", CategoryView, []string{"Ctrl+PgUp"}, false},
	{"view.zoomOut", "Viewer Zoom Out", CategoryView, []string{"Ctrl+PgDn"}, false},
	{"view.fit", "Fit to Window", CategoryView, []string{"Shift+F"}, false},
}

// registerDefaults loads the factory command set into the registry.
// Binding specs in defaultCommands are known-valid; a failure here is a
// programming error and panics during init.
func registerDefaults(r *Registry) {
	for _, def := range defaultCommands {
		cmd := &Command{
			ID:           def.id,
			Name:         def.name,
			Category:     def.category,
			Bindings:     def.combos,
			Customizable: !def.fixed,
		}
		if err := r.Register(cmd); err != nil {
			panic("invalid default command: " + def.id + ": " + err.Error())
		}
	}
}
