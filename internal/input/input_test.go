package input_test

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/homecmd/internal/control/action"
	"github.com/ja-he/homecmd/internal/input"
)

func TestConfigKeyspecToKey(t *testing.T) {

	t.Run("valid", func(t *testing.T) {
		expectValid := func(s input.Keyspec) []input.Key {
			keys, err := input.ConfigKeyspecToKeys(s)
			if err != nil {
				t.Error("unexpected error on valid spec:", err.Error())
			}
			if keys == nil {
				t.Error("unexpected nil keyspec on valid spec")
			}
			return keys
		}

		t.Run("empty", func(t *testing.T) {
			keys := expectValid("")
			if len(keys) != 0 {
				t.Error("expected empty seq of keys")
			}
		})

		t.Run("single", func(t *testing.T) {
			keys := expectValid("x")
			if len(keys) != 1 {
				t.Error("expected single key")
			}
			if (keys[0] != input.Key{Key: tcell.KeyRune, Ch: 'x'}) {
				t.Error("expected single key to be 'x'")
			}
		})

		t.Run("special", func(t *testing.T) {
			t.Run("<c-a>", func(t *testing.T) {
				keys := expectValid("<c-a>")
				if len(keys) != 1 {
					t.Error("expected single key")
				}
				if (keys[0] != input.Key{Key: tcell.KeyCtrlA}) {
					t.Error("expected single key to be <c-a>")
				}
			})
			t.Run("<space>", func(t *testing.T) {
				keys := expectValid("<space>")
				if len(keys) != 1 {
					t.Error("expected single key")
				}
				if (keys[0] != input.Key{Key: tcell.KeyRune, Ch: ' '}) {
					t.Error("expected single key to be <space>")
				}
			})
		})

		t.Run("sequence", func(t *testing.T) {
			t.Run("characters", func(t *testing.T) {
				keys := expectValid("xyz")
				if len(keys) != 3 {
					t.Error("expected three keys")
				}
				if (keys[0] != input.Key{Key: tcell.KeyRune, Ch: 'x'}) && (keys[1] != input.Key{Key: tcell.KeyRune, Ch: 'y'}) && (keys[2] != input.Key{Key: tcell.KeyRune, Ch: 'z'}) {
					t.Error("expected sequence [x,y,z], not", keys)
				}
			})
			t.Run("with special", func(t *testing.T) {
				keys := expectValid("x<c-w>z")
				if len(keys) != 3 {
					t.Error("expected three keys")
				}
				if (keys[0] != input.Key{Key: tcell.KeyRune, Ch: 'x'}) && (keys[1] != input.Key{Key: tcell.KeyCtrlW}) && (keys[2] != input.Key{Key: tcell.KeyRune, Ch: 'z'}) {
					t.Error("expected sequence [x,<c-w>,z], not", keys)
				}
			})
		})
	})

	t.Run("invalid", func(t *testing.T) {
		expectInvalid := func(s input.Keyspec) error {
			keys, err := input.ConfigKeyspecToKeys(s)
			if err == nil {
				t.Error("unexpectedly no err on invalid spec")
			}
			if keys != nil {
				t.Error("unexpected key seq on invalid spec:", keys)
			}
			return err
		}

		t.Run("unopened special", func(t *testing.T) {
			expectInvalid("c-w>")
		})
		t.Run("unclosed special (EOL)", func(t *testing.T) {
			expectInvalid("<c-w")
		})
		t.Run("unclosed special (double open)", func(t *testing.T) {
			expectInvalid("<c-w<c-a>")
		})
		t.Run("wrong delimiter in special", func(t *testing.T) {
			expectInvalid("<c+a>")
		})
		t.Run("unknown special", func(t *testing.T) {
			expectInvalid("<hyper>")
		})
	})

}

func TestNewNode(t *testing.T) {
	n := input.NewNode()
	if n.Children == nil {
		t.Error("node.Children not initialized")
	}
	if len(n.Children) != 0 {
		t.Error("node.Children not empty")
	}
}

func TestNewLeaf(t *testing.T) {
	a := DummyAction{}
	l := input.NewLeaf(&a)
	if l.Action != &a {
		t.Error("action not assigned properly to leaf")
	}
	if !(l.Children == nil || len(l.Children) == 0) {
		t.Error("expected leaf to have nil children or to be empty")
	}
}

func TestChild(t *testing.T) {
	t.Run("node with no child gives no child", func(t *testing.T) {
		n := input.NewNode()
		child := n.Child(input.Key{Key: tcell.KeyRune, Ch: 'x'})
		if child != nil {
			t.Errorf("given non-nil child %#v for non-entered input", child)
		}
		if n.Action != nil {
			t.Error("expected new node to have nil action")
		}
	})
	t.Run("node with leaf child on x gives leaf for Child(x)", func(t *testing.T) {
		key := input.Key{Key: tcell.KeyRune, Ch: 'x'}
		action := DummyAction{}
		leaf := input.NewLeaf(&action)

		n := input.NewNode()
		n.Children[key] = leaf
		child := n.Child(key)
		if child == nil {
			t.Error("given nil child for mapped input")
		}
		if child != leaf {
			t.Errorf("not given expected leaf, but %#v", child)
		}
	})
}

func TestConstructInputTree(t *testing.T) {

	t.Run("empty map produces single-node tree", func(t *testing.T) {
		emptyTree, err := input.ConstructInputTree(make(map[input.Keyspec]action.Action))
		if err != nil {
			t.Error(err.Error())
		}
		validateNewlyCreatedTree(t, emptyTree)
		if !(emptyTree.Root.Children != nil && len(emptyTree.Root.Children) == 0) {
			t.Error("empty tree's root node should be the only one, but has children:", emptyTree.Root.Children)
		}
		if emptyTree.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: 'x'}) {
			t.Error("empty tree claims to apply (non-added) input")
		}
	})

	t.Run("slot bindings", func(t *testing.T) {
		tree, trace := remoteTree(t)
		validateNewlyCreatedTree(t, tree)

		for _, tc := range []struct {
			keys     []input.Key
			expected string
		}{
			{[]input.Key{runeKey('1')}, "slot 1"},
			{[]input.Key{runeKey('0')}, "slot 10"},
			{[]input.Key{{Key: tcell.KeyCtrlZ}}, "undo"},
			{[]input.Key{runeKey('g'), runeKey('l')}, "slot lights"},
		} {
			*trace = (*trace)[:0]
			for i, k := range tc.keys {
				if !tree.ProcessInput(k) {
					t.Errorf("key %d of binding for '%s' not processed", i, tc.expected)
				}
				if last := i == len(tc.keys)-1; tree.CapturesInput() == last {
					t.Errorf("unexpected capture state after key %d of binding for '%s'", i, tc.expected)
				}
			}
			if len(*trace) != 1 || (*trace)[0] != tc.expected {
				t.Errorf("expected only '%s' to run, got %v", tc.expected, *trace)
			}
		}
	})

	t.Run("unbound keys are not processed", func(t *testing.T) {
		tree, trace := remoteTree(t)
		if tree.ProcessInput(runeKey('9')) {
			t.Error("tree processes unbound slot key")
		}
		if tree.ProcessInput(input.Key{}) {
			t.Error("tree processes empty key")
		}
		if tree.CapturesInput() {
			t.Error("tree captures input after unbound keys")
		}

		if !tree.ProcessInput(runeKey('g')) {
			t.Error("tree fails to process sequence start")
		}
		if tree.ProcessInput(runeKey('1')) {
			t.Error("tree processes slot key in the middle of a sequence")
		}
		if len(*trace) != 0 {
			t.Error("actions ran on unbound input:", *trace)
		}
	})

	t.Run("prefix conflicts error", func(t *testing.T) {
		for _, spec := range []map[input.Keyspec]action.Action{
			{"x": &DummyAction{S: "x"}, "xy": &DummyAction{S: "xy"}},
			{"g": &DummyAction{S: "g"}, "<c-a>g": &DummyAction{S: "c-a g"}, "<c-a>": &DummyAction{S: "c-a"}},
		} {
			tree, err := input.ConstructInputTree(spec)
			if err == nil {
				t.Error("nil error despite conflicting keyspecs", spec)
			}
			if tree != nil {
				t.Error("non-nil tree despite conflicting keyspecs")
			}
		}
	})

	t.Run("empty keyspec errors", func(t *testing.T) {
		_, err := input.ConstructInputTree(map[input.Keyspec]action.Action{"": &DummyAction{}})
		if err == nil {
			t.Error("nil error despite empty keyspec")
		}
	})

	t.Run("failing action still applies", func(t *testing.T) {
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"u": &DummyAction{F: func() {}, Err: errors.New("nothing to undo")},
		})
		if err != nil {
			t.Fatal(err.Error())
		}
		if !tree.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: 'u'}) {
			t.Error("tree did not apply input of failing action")
		}
	})

	t.Run("invalid keyspec errors", func(t *testing.T) {
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{"<asdf": &DummyAction{}})
		if err == nil {
			t.Error("nil error despite invalid keyspec")
		}
		if tree != nil {
			t.Error("non-nil tree despite invalid keyspec")
		}
	})

}

func TestEmptyTree(t *testing.T) {
	tree := input.EmptyTree()
	validateNewlyCreatedTree(t, tree)
}

func TestGetHelp(t *testing.T) {
	t.Run("Tree.GetHelp", func(t *testing.T) {
		tree, _ := remoteTree(t)
		help := tree.GetHelp()
		expected := input.Help{
			"1":     "slot 1",
			"0":     "slot 10",
			"<c-z>": "undo",
			"gl":    "slot lights",
		}
		if len(help) != len(expected) {
			t.Error("got help with unexpected amount of entries:", len(help))
		}
		for keys, explanation := range expected {
			actual, ok := help[keys]
			if !ok {
				t.Errorf("help message for '%s' not found", keys)
			}
			if actual != explanation {
				t.Errorf("got help string '%s' for '%s' instead of '%s'", actual, keys, explanation)
			}
		}
	})
	t.Run("Node.GetHelp", func(t *testing.T) {
		t.Run("empty node", func(t *testing.T) {
			node := input.NewNode()
			help := node.GetHelp()
			if help == nil {
				t.Error("got nil help from node")
			}
			if len(help) != 0 {
				t.Error("got non-empty help from node")
			}
		})
		t.Run("leaf", func(t *testing.T) {
			node := input.NewLeaf(&DummyAction{})
			help := node.GetHelp()
			if help == nil {
				t.Error("got nil help from leaf")
			}
			if len(help) != 1 {
				t.Error("expected one help result from leaf")
			}
		})
		t.Run("node with children", func(t *testing.T) {
			root := input.NewNode()
			lLeaf := input.NewLeaf(&DummyAction{S: "x action"})
			rMiddle := input.NewNode()
			rLeaf := input.NewLeaf(&DummyAction{S: "yz action"})

			root.Children[input.Key{Key: tcell.KeyRune, Ch: 'x'}] = lLeaf
			root.Children[input.Key{Key: tcell.KeyRune, Ch: 'y'}] = rMiddle
			rMiddle.Children[input.Key{Key: tcell.KeyRune, Ch: 'z'}] = rLeaf

			help := root.GetHelp()
			if help == nil {
				t.Error("got nil help from root")
			}
			if len(help) != 2 {
				t.Error("expected two help results from root")
			}
			actual, ok := help["x"]
			if !ok {
				t.Error("help message for 'x' not found")
			}
			if actual != "x action" {
				t.Errorf("got help string '%s' instead of expected", actual)
			}
			actual, ok = help["yz"]
			if !ok {
				t.Error("help message for 'yz' not found")
			}
			if actual != "yz action" {
				t.Errorf("got help string '%s' instead of expected", actual)
			}
		})
	})
}

// remoteTree builds a tree bound the way the remote binds slots and undo.
// Every action appends its explanation to the returned trace.
func remoteTree(t *testing.T) (*input.Tree, *[]string) {
	t.Helper()
	trace := &[]string{}
	record := func(name string) action.Action {
		return action.NewSimple(func() string { return name }, func() error { *trace = append(*trace, name); return nil })
	}
	tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"1":     record("slot 1"),
		"0":     record("slot 10"),
		"<c-z>": record("undo"),
		"gl":    record("slot lights"),
	})
	if err != nil {
		t.Fatal(err.Error())
	}
	return tree, trace
}

func runeKey(r rune) input.Key { return input.Key{Key: tcell.KeyRune, Ch: r} }

func validateNewlyCreatedTree(t *testing.T, newlyCreated *input.Tree) {
	t.Helper() // NOTE(ja_he): Almost certainly not needed

	if newlyCreated.Root == nil || newlyCreated.Current == nil {
		t.Error("either root or current is nil on newly created tree:", newlyCreated.Root, ",", newlyCreated.Current)
	}
	if newlyCreated.Root != newlyCreated.Current {
		t.Error("root and current differ on newly created tree:", newlyCreated.Root, ",", newlyCreated.Current)
	}
	if newlyCreated.CapturesInput() {
		t.Error("newly created tree claims to capture input")
	}
}

func TestToConfigIdentifierString(t *testing.T) {
	for _, spec := range []input.Keyspec{"x", "1", "<space>", "<c-z>", "<tab>", "<cr>", "<c-bs>", "<c-space>"} {
		keys, err := input.ConfigKeyspecToKeys(spec)
		if err != nil || len(keys) != 1 {
			t.Fatal("unexpected parse result for", spec)
		}
		if actual := input.ToConfigIdentifierString(keys[0]); actual != string(spec) {
			t.Errorf("expected '%s' to round-trip, got '%s'", spec, actual)
		}
	}
}

func TestKeyFromEvent(t *testing.T) {
	k := input.KeyFromEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if (k != input.Key{Key: tcell.KeyRune, Ch: 'q'}) {
		t.Error("unexpected key for rune event:", k.ToDebugString())
	}
	k = input.KeyFromEvent(tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl))
	if (k != input.Key{Key: tcell.KeyCtrlZ}) {
		t.Error("unexpected key for ctrl event:", k.ToDebugString())
	}
}

// to avoid depending on 'action' functions
type DummyAction struct {
	F   func()
	S   string
	Err error
}

func (d *DummyAction) Do() error       { d.F(); return d.Err }
func (d *DummyAction) Undo() error     { return nil }
func (d *DummyAction) Undoable() bool  { return false }
func (d *DummyAction) Explain() string { return d.S }
