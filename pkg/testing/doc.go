// Package testing provides a presenter testing harness for conduit.
//
// # Quick Start
//
// Attach a presenter, inspect the widgets it rendered, and interact with
// them through their callbacks:
//
//	func TestCounter(t *testing.T) {
//	    ui := conduittest.Attach(t, &Counter{})
//
//	    if got := ui.Text("label"); got != "Clicked 0 times" {
//	        t.Fatalf("label = %q", got)
//	    }
//
//	    if err := ui.Click("increment"); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if got := ui.Text("label"); got != "Clicked 1 times" {
//	        t.Errorf("label = %q", got)
//	    }
//	}
//
// Attach initializes the presenter with presenter.ImmediateExecutor, so
// every interaction has rendered by the time it returns. Gestures return an
// error when the widget is missing, hidden, disabled or has no handler.
//
// A build that panics or emits a missing or duplicate key fails the test
// and panics out of the call that triggered it.
//
// # Finders
//
// Query the last rendered list with finders:
//
//	ui.Find(conduittest.ByType[widget.Button]()).Count()
//	ui.Find(conduittest.ByText("Submit")).Exists()
//
// # Snapshot Testing
//
// Compare the last rendered list against a golden file:
//
//	ui.CaptureSnapshot().MatchesFile(t, "testdata/counter.snapshot.json")
//
// Update snapshots with:
//
//	CONDUIT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import conduittest "github.com/go-drift/conduit/pkg/testing"
package testing
