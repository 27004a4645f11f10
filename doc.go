// Package bower is a retained-mode 2D scene graph for [Ebitengine].
//
// Applications describe their interface once, as a tree of nodes built with
// chained With* calls. bower folds every node into absolute coordinates as
// it is attached, flattens the tree into a single depth-sorted list, and uses
// that list both to paint back to front and to route pointer presses to the
// topmost node under the cursor.
//
// # Quick start
//
// [Run] creates the window and game loop:
//
//	func view() *bower.Node {
//		button := bower.NewRect().
//			WithSize(0.5, 0.25).
//			Center().
//			OnClick(func(c *bower.Context) { c.ToggleFullscreen() })
//		return bower.NewEmpty().WithChild(button)
//	}
//
//	bower.Run(bower.ViewFunc(view), bower.RunConfig{Title: "demo"})
//
// For full control construct a [State] with [NewState]; it implements
// [ebiten.Game].
//
// # Coordinates
//
// Every node lives in its parent's unit square: (0, 0) is the parent's
// top-left corner and (1, 1) its bottom-right, with Y growing downward. The
// root's parent is the window. [Node.WithChild] maps the child's whole
// subtree into the parent's box, so after composition [Node.Box] is in
// window-relative units. Values outside [0, 1] are allowed and are not
// clamped.
//
// Geometry is frozen once a node is attached or registered; size and
// position changes panic from then on. Colors and text content may still be
// changed, including from click handlers.
//
// # Depth and paint order
//
// Attaching a child places its subtree one depth step in front of the
// parent. Higher depths paint first; ties keep tree order (depth-first,
// parents before children). Set [Node.WithDepth] on a subtree's root to
// move the whole subtree.
//
// # Node kinds
//
//   - [NewEmpty]: an invisible group.
//   - [NewRect]: a filled rectangle with optional rounded corners.
//   - [NewText]: text laid out inside the node box and clipped to it.
//   - [NewImage] / [LoadImage]: a decoded image stretched over the box.
//
// # Input
//
// On a primary-button press the topmost node whose box contains the pointer
// receives the click. A node without a handler still absorbs the press, so a
// label drawn over a button should carry the handler itself. Handlers get a
// [Context] that reaches the window and other registered nodes.
//
// # Frames
//
// Each frame prepares, paints and trims every node. A lost or resized
// surface is reconfigured, a slow frame is skipped, and [ErrOutOfMemory]
// stops the loop; Run returns that error.
//
// # Diagnostics
//
// Logging goes through a [github.com/charmbracelet/log] logger that can be
// replaced with [SetLogger]. [SetDebugMode] adds tree-shape warnings and
// build timings; [Registry.Dump] renders the registry as a table.
// [State.InjectClick], [LoadTestScript] and [State.Screenshot] drive a
// running view for automated visual checks.
//
// [Ebitengine]: https://ebitengine.org
package bower
