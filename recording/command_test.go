package recording

import "testing"

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		typ  CommandType
		want string
	}{
		{CmdSave, "Save"},
		{CmdRestore, "Restore"},
		{CmdRotate, "Rotate"},
		{CmdDrawColor, "DrawColor"},
		{CmdDrawCircle, "DrawCircle"},
		{CmdDrawArc, "DrawArc"},
		{CmdDrawRect, "DrawRect"},
		{CmdDrawText, "DrawText"},
		{CmdDrawImage, "DrawImage"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestCommandTypes(t *testing.T) {
	cmds := []struct {
		cmd  Command
		want CommandType
	}{
		{SaveCommand{}, CmdSave},
		{RestoreCommand{}, CmdRestore},
		{RotateCommand{}, CmdRotate},
		{DrawColorCommand{}, CmdDrawColor},
		{DrawCircleCommand{}, CmdDrawCircle},
		{DrawArcCommand{}, CmdDrawArc},
		{DrawRectCommand{}, CmdDrawRect},
		{DrawTextCommand{}, CmdDrawText},
		{DrawImageCommand{}, CmdDrawImage},
	}
	for _, tt := range cmds {
		if got := tt.cmd.Type(); got != tt.want {
			t.Errorf("%T.Type() = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}

func TestPaintBuilders(t *testing.T) {
	p := DefaultPaint()
	if !p.AntiAlias || p.Style != StyleFill {
		t.Errorf("DefaultPaint() = %+v, want anti-aliased fill", p)
	}
	if p.HasShadow() {
		t.Error("DefaultPaint() should not cast a shadow")
	}

	q := p.WithTextSize(21).WithStyle(StyleStroke).WithAlpha(0.5)
	if q.TextSize != 21 || q.Style != StyleStroke || q.Color.A != 0.5 {
		t.Errorf("builder result = %+v", q)
	}
	if p.TextSize != 12 {
		t.Error("builders must not modify the receiver")
	}
	if StyleStroke.String() != "Stroke" || StyleFill.String() != "Fill" {
		t.Error("PaintStyle.String mismatch")
	}
}
