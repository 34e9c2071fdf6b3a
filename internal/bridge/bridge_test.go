package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebisu/internal/layout"
)

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Command
		wantErr bool
	}{
		{
			name:    "add with position",
			payload: `{"action":"addPanel","panelId":"details","position":"left"}`,
			want:    Command{Op: OpAddPanel, Panel: "details", Side: layout.SideLeft},
		},
		{
			name:    "add with invalid position falls back",
			payload: `{"action":"addPanel","panelId":"details","position":"middle"}`,
			want:    Command{Op: OpAddPanel, Panel: "details", Side: layout.SideRight},
		},
		{
			name:    "add with missing position falls back",
			payload: `{"action":"addPanel","panelId":"details"}`,
			want:    Command{Op: OpAddPanel, Panel: "details", Side: layout.SideRight},
		},
		{
			name:    "remove",
			payload: `{"action":"removePanel","panelId":"chat"}`,
			want:    Command{Op: OpRemovePanel, Panel: "chat"},
		},
		{
			name:    "resize clamps",
			payload: `{"action":"resizePanel","panelId":"people","percentage":150}`,
			want:    Command{Op: OpResizePanel, Panel: "people", Percent: 100},
		},
		{
			name:    "resize accepts quoted number",
			payload: `{"action":"resizePanel","panelId":"people","percentage":"40"}`,
			want:    Command{Op: OpResizePanel, Panel: "people", Percent: 40},
		},
		{
			name:    "check visibility",
			payload: `{"action":"checkPanelVisibility","panelId":"jobs"}`,
			want:    Command{Op: OpCheckVisibility, Panel: "jobs"},
		},
		{
			name:    "unknown action",
			payload: `{"action":"explodePanel","panelId":"chat"}`,
			wantErr: true,
		},
		{
			name:    "missing panel id",
			payload: `{"action":"removePanel"}`,
			wantErr: true,
		},
		{
			name:    "resize without percentage",
			payload: `{"action":"resizePanel","panelId":"people"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			payload: `{"action":`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCommand([]byte(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newWorkspace() *layout.Controller {
	return layout.New(
		&layout.Split{
			Dir:    layout.Row,
			First:  layout.Leaf{Panel: "chat"},
			Second: layout.Leaf{Panel: "people"},
			Ratio:  50,
		},
		layout.WithDefaultPanel("chat"),
	)
}

func TestDispatch_AddPanel(t *testing.T) {
	c := newWorkspace()
	res := Dispatch(context.Background(), c, Command{Op: OpAddPanel, Panel: "details", Side: layout.SideBottom})
	assert.True(t, res.Success)
	assert.Contains(t, res.Message, `"details"`)
	assert.True(t, c.IsVisible("details"))
}

func TestDispatch_RemoveAbsentIsSuccessfulNoop(t *testing.T) {
	c := newWorkspace()
	res := Dispatch(context.Background(), c, Command{Op: OpRemovePanel, Panel: "ghost"})
	assert.True(t, res.Success, "not-found is a no-op, not an error")
	assert.Contains(t, res.Message, "not visible")
	assert.Len(t, c.VisiblePanels(), 2)
}

func TestDispatch_Resize(t *testing.T) {
	c := newWorkspace()
	res := Dispatch(context.Background(), c, Command{Op: OpResizePanel, Panel: "chat", Percent: 65})
	require.True(t, res.Success)
	assert.Equal(t, float64(65), c.Root().(*layout.Split).Ratio)
}

func TestDispatch_CheckVisibility(t *testing.T) {
	c := newWorkspace()

	res := Dispatch(context.Background(), c, Command{Op: OpCheckVisibility, Panel: "chat"})
	require.NotNil(t, res.Visible)
	assert.True(t, *res.Visible)

	res = Dispatch(context.Background(), c, Command{Op: OpCheckVisibility, Panel: "search"})
	require.NotNil(t, res.Visible)
	assert.False(t, *res.Visible)
	assert.Contains(t, res.Message, "not currently visible")
}

func TestServer_RoundTrip(t *testing.T) {
	c := newWorkspace()
	forward := func(cmd Command) Result {
		return Dispatch(context.Background(), c, cmd)
	}
	s := NewServer("127.0.0.1:0", forward, nil)
	require.NoError(t, s.Start())
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Stop(ctx)
	}()

	body := bytes.NewBufferString(`{"action":"addPanel","panelId":"logs","position":"top"}`)
	resp, err := http.Post("http://"+s.Addr()+"/actions", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.True(t, c.IsVisible("logs"))
}

func TestServer_RejectsBadPayload(t *testing.T) {
	s := NewServer("127.0.0.1:0", func(Command) Result { return Result{} }, nil)
	require.NoError(t, s.Start())
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Stop(ctx)
	}()

	resp, err := http.Post("http://"+s.Addr()+"/actions", "application/json",
		bytes.NewBufferString(`{"action":"explodePanel","panelId":"chat"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var res Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.False(t, res.Success)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	s := NewServer("127.0.0.1:0", func(Command) Result { return Result{} }, nil)
	require.NoError(t, s.Start())
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Stop(ctx)
	}()

	resp, err := http.Get("http://" + s.Addr() + "/actions")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
