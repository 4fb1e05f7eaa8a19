package token

import "testing"

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		EOF:          "EOF",
		Ident:        "Ident",
		KwFunction:   "function",
		Arrow:        "=>",
		QuestionDot:  "?.",
		UShrAssign:   ">>>=",
		PipeGt:       "|>",
		TemplateHead: "TemplateHead",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestIsAssignOp(t *testing.T) {
	yes := []Kind{Assign, PlusAssign, StarStarAssign, UShrAssign, CoalesceAssign, AndAndAssign}
	no := []Kind{EqEq, EqEqEq, Arrow, Lt, PlusPlus}

	for _, k := range yes {
		if !k.IsAssignOp() {
			t.Errorf("%v must be an assignment operator", k)
		}
	}
	for _, k := range no {
		if k.IsAssignOp() {
			t.Errorf("%v must not be an assignment operator", k)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	if !(Token{Kind: KwAwait}).IsIdentLike() {
		t.Error("await is ident-like outside async contexts")
	}
	if (Token{Kind: KwReturn}).IsIdentLike() {
		t.Error("return is never ident-like")
	}
	if !(Token{Kind: TemplateMiddle}).IsTemplatePart() {
		t.Error("TemplateMiddle is a template part")
	}
	if !(Token{Kind: KwVoid}).IsKeyword() {
		t.Error("void is a keyword")
	}
}
