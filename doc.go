// Package vtkernel provides a headless VT220-compatible terminal emulator.
//
// This package emulates a terminal without any display, making it ideal for:
//   - Testing terminal applications without a GUI
//   - Building terminal multiplexers and recorders
//   - Creating terminal-based web applications
//   - Automated testing of CLI tools
//   - Screen scraping and automation
//
// # Quick Start
//
// Create a terminal and write ANSI sequences to it:
//
//	term := vtkernel.New()
//	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(term.String()) // "Hello World!"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Terminal]: The main emulator that processes ANSI sequences
//   - [Buffer]: A 2D grid of cells with scrollback support
//   - [Cell]: A single character with colors and attributes
//   - [Cursor]: Tracks position and rendering style
//
// Byte-level decoding (UTF-8 reassembly and the VT500 parser state machine)
// lives in the vtparser subpackage; Terminal implements [vtparser.Handler]
// and receives already-parsed operations.
//
// # Terminal
//
// Terminal is the main entry point. It implements [io.Writer] so you can write
// raw bytes containing ANSI escape sequences:
//
//	term := vtkernel.New(
//	    vtkernel.WithSize(24, 80),           // 24 rows, 80 columns
//	    vtkernel.WithScrollback(storage),    // Enable scrollback
//	    vtkernel.WithResponse(ptyWriter),    // Handle terminal responses
//	)
//
//	// Process output from a command
//	cmd := exec.Command("ls", "-la", "--color")
//	cmd.Stdout = term
//	cmd.Run()
//
//	// Read the result
//	for row := 0; row < term.Rows(); row++ {
//	    fmt.Println(term.LineContent(row))
//	}
//
// # Dual Buffers
//
// Terminal maintains two buffers:
//
//   - Primary buffer: Normal mode with optional scrollback storage
//   - Alternate buffer: Used by full-screen apps (vim, less, htop), no scrollback
//
// Applications switch buffers via ANSI sequences (CSI ?1049h/l). Check which
// buffer is active:
//
//	if term.IsAlternateScreen() {
//	    // Full-screen app is running
//	}
//
// Resizing reflows the primary buffer: wrapped-line chains are rewrapped to
// the new column width and overflow is pushed into scrollback. The alternate
// buffer is simply cleared and resized, since full-screen applications
// redraw unconditionally on SIGWINCH anyway.
//
//	if err := term.Resize(30, 100); err != nil {
//	    // rows/cols must both be >= 1
//	}
//
// # Cells and Attributes
//
// Each cell stores a character with styling information:
//
//	cell := term.Cell(row, col)
//	if cell != nil {
//	    fmt.Printf("Char: %c\n", cell.Char)
//	    fmt.Printf("Bold: %v\n", cell.HasFlag(vtkernel.CellFlagBold))
//	    fmt.Printf("FG: %v\n", cell.Fg())
//	    fmt.Printf("BG: %v\n", cell.Bg())
//	}
//
// Cell flags include: Bold, Dim, Italic, Underline (and its curly/dotted/
// dashed/double variants), Blink, Reverse, Hidden, Strike.
//
// The current attribute combination (the one new cells are stamped with) is
// interned through a bounded [StyleCache], so runs of text sharing the same
// SGR state share one allocation rather than repeating Fg/Bg/Flags per cell.
//
// # Colors
//
// Colors are stored using Go's [image/color] interface. The package supports:
//
//   - Named colors (indices 0-15 for standard ANSI colors)
//   - 256-color palette (indices 0-255), generated from the same cube steps
//     (0, 95, 135, 175, 215, 255) and grayscale ramp xterm uses
//   - True color (24-bit RGB via [color.RGBA])
//
// [ContrastRatio] computes the WCAG 2.1 contrast ratio between two cell
// colors (resolving IndexedColor/NamedColor/nil through the default palette
// first), useful for hosts that want to warn about illegible color pairs:
//
//	ratio := vtkernel.ContrastRatio(cell.Fg(), cell.Bg())
//
// # Scrollback
//
// Lines scrolled off the top of the primary buffer can be stored for later access.
// Implement [ScrollbackProvider] and pass it with [WithScrollback]; without
// one, the default [NoopScrollback] discards those lines:
//
//	term := vtkernel.New(vtkernel.WithScrollback(myStorage))
//
//	// Access scrollback
//	for i := 0; i < term.ScrollbackLen(); i++ {
//	    line := term.ScrollbackLine(i) // []Cell
//	}
//
// # Providers
//
// Providers handle terminal events and queries. All are optional with no-op defaults:
//
//   - [BellProvider]: Handles bell/beep events
//   - [TitleProvider]: Handles window title changes (OSC 0/1/2)
//   - [APCProvider], [PMProvider], [SOSProvider]: Handle APC/PM/SOS string sequences
//   - [ClipboardProvider]: Handles clipboard operations (OSC 52)
//   - [ScrollbackProvider]: Stores lines scrolled off screen
//   - [RecordingProvider]: Captures raw input for replay
//   - [SizeProvider]: Provides pixel dimensions for DSR size queries
//
// Example with providers:
//
//	term := vtkernel.New(
//	    vtkernel.WithResponse(os.Stdout),
//	    vtkernel.WithBell(&MyBellHandler{}),
//	    vtkernel.WithTitle(&MyTitleHandler{}),
//	)
//
// # Middleware
//
// Middleware intercepts ANSI handler calls for custom behavior:
//
//	mw := &vtkernel.Middleware{
//	    Input: func(r rune, next func(rune)) {
//	        log.Printf("Input: %c", r)
//	        next(r) // Call default handler
//	    },
//	    Bell: func(next func()) {
//	        log.Println("Bell!")
//	        // Don't call next() to suppress the bell
//	    },
//	}
//	term := vtkernel.New(vtkernel.WithMiddleware(mw))
//
// # Terminal Modes
//
// Various terminal behaviors are controlled by mode flags:
//
//	term.HasMode(vtkernel.ModeLineWrap)       // Auto line wrap enabled?
//	term.HasMode(vtkernel.ModeShowCursor)     // Cursor visible?
//	term.HasMode(vtkernel.ModeBracketedPaste) // Bracketed paste enabled?
//
// See [TerminalMode] for all available modes.
//
// # Keys and Mouse
//
// [Terminal.EncodeKey] and [Terminal.EncodeMouse] translate a semantic key
// press or mouse event into the byte sequence a real terminal would send the
// child process, respecting the active cursor-key and mouse-reporting modes
// (the application keypad mode is not consulted):
//
//	seq := term.EncodeKey(vtkernel.KeyUp, 0)
//	pty.Write(seq)
//
// # Dirty Tracking
//
// Track which cells changed for efficient rendering:
//
//	if term.HasDirty() {
//	    for _, pos := range term.DirtyCells() {
//	        // Redraw cell at pos.Row, pos.Col
//	    }
//	    term.ClearDirty()
//	}
//
// [Terminal.TakeDamage] offers a coarser, row-granular view of the same
// changes (plus cursor-moved and scroll-delta flags), for renderers that
// redraw whole rows rather than individual cells:
//
//	dmg := term.TakeDamage()
//	for _, row := range dmg.DirtyRowIndices() {
//	    // Redraw row
//	}
//
// # Selection
//
// Manage text selections for copy/paste:
//
//	term.SetSelection(
//	    vtkernel.Position{Row: 0, Col: 0},
//	    vtkernel.Position{Row: 2, Col: 10},
//	)
//	text := term.GetSelectedText()
//	term.ClearSelection()
//
// # Search
//
// Find text in the visible screen or scrollback:
//
//	matches := term.Search("error")
//	for _, pos := range matches {
//	    fmt.Printf("Found at row %d, col %d\n", pos.Row, pos.Col)
//	}
//
//	// Search scrollback (returns negative row numbers)
//	scrollbackMatches := term.SearchScrollback("error")
//
// # Snapshots
//
// Capture the terminal state for serialization or rendering:
//
//	// Text only (smallest)
//	snap := term.Snapshot(vtkernel.SnapshotDetailText)
//
//	// With style segments (good for HTML rendering)
//	snap := term.Snapshot(vtkernel.SnapshotDetailStyled)
//
//	// Full cell data (complete state)
//	snap := term.Snapshot(vtkernel.SnapshotDetailFull)
//
//	// Convert to JSON
//	data, _ := json.Marshal(snap)
//
// For hosts that already hold a previous Snapshot, [Terminal.Diff] returns
// only the rows touched since the last Diff or TakeDamage call, and
// [ApplyDiff] folds that into the previous Snapshot to produce the next one
// without re-transmitting unchanged rows:
//
//	diff := term.Diff(vtkernel.SnapshotDetailText)
//	next := vtkernel.ApplyDiff(prev, diff)
//
// Snapshots include detailed attribute information:
//   - Underline styles: "single", "double", "curly", "dotted", "dashed"
//   - Blink types: "slow", "fast"
//   - Underline color (separate from foreground)
//   - Hyperlink references (OSC 8)
//
// # Working Directory
//
// OSC 7 reports let a host track the shell's current directory, including
// across SSH hops via the hostname in the file:// URI:
//
//	dir := term.WorkingDirectoryPath()
//
// # Auto-Resize Mode
//
// In auto-resize mode, the buffer grows instead of scrolling:
//
//	term := vtkernel.New(vtkernel.WithAutoResize())
//
//	// Capture complete output without truncation
//	cmd.Stdout = term
//	cmd.Run()
//
//	// Buffer has grown to fit all output
//	fmt.Printf("Total rows: %d\n", term.Rows())
//
// # Thread Safety
//
// All Terminal methods are safe for concurrent use. The terminal uses internal
// locking to protect state. However, if you need to perform multiple operations
// atomically, you should use your own synchronization.
//
// # Supported ANSI Sequences
//
// The terminal supports a comprehensive set of ANSI escape sequences including:
//
//   - Cursor movement (CUU, CUD, CUF, CUB, CUP, HVP, etc.)
//   - Cursor save/restore (DECSC, DECRC)
//   - Erase commands (ED, EL, ECH)
//   - Insert/delete (ICH, DCH, IL, DL)
//   - Scrolling (SU, SD, DECSTBM)
//   - Character attributes (SGR) with full color support, including colon
//     subparameter forms (38:2::r:g:b, 4:3 curly underline)
//   - Terminal modes (DECSET, DECRST)
//   - Device status reports (DSR) and primary device attributes (DA)
//   - Alternate screen buffer
//   - Bracketed paste mode
//   - Mouse reporting (X10, UTF-8, and SGR encodings)
//   - Window title (OSC 0/1/2), including push/pop (CSI 22/23 t)
//   - Clipboard (OSC 52)
//   - Hyperlinks (OSC 8)
//   - Working directory reporting (OSC 7)
//   - Kitty keyboard protocol (CSI > u / CSI < u / CSI = u / CSI ? u)
package vtkernel
