package ast

import "testing"

func TestConsumesOneByte(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"literal", Literal('a'), true},
		{"anybyte", AnyByte(), true},
		{"oneof", OneOf('a', 'b'), true},
		{"range", Range('a', 'z'), true},
		{"concat", Concat(Literal('a')), false},
		{"alt", Alt(Literal('a'), Literal('b')), false},
		{"anchor", AnchorStart(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConsumesOneByte(tt.node); got != tt.want {
				t.Errorf("ConsumesOneByte(%v) = %v, want %v", tt.node.Kind, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := KindLiteral.String(); got != "Literal" {
		t.Errorf("KindLiteral.String() = %q, want %q", got, "Literal")
	}
	if got := Kind(255).String(); got == "" {
		t.Errorf("Kind(255).String() returned empty string")
	}
}
