package api

import (
	"context"
	"encoding/json"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/ogarreto/robo-arena/internal/engine"
	"github.com/ogarreto/robo-arena/internal/logging"
	"github.com/ogarreto/robo-arena/internal/service"
)

// liveFrame is one WebSocket message sent to a spectator: a stream of
// event frames followed by exactly one result or error frame.
type liveFrame struct {
	Type   string              `json:"type"`
	Event  *engine.Event       `json:"event,omitempty"`
	Result *engine.MatchResult `json:"result,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// LiveMatch upgrades the connection to WebSocket, reads a single
// simulation request and streams the match event-by-event, closing with
// a result frame. The ranking update and persistence happen exactly as
// in the plain simulate endpoint.
func (h *ArenaHandler) LiveMatch(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("failed to accept websocket connection", err, nil)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream aborted")

	ctx := c.Request.Context()
	msgType, data, err := conn.Read(ctx)
	if err != nil {
		return
	}
	if msgType != websocket.MessageText {
		writeFrame(ctx, conn, &liveFrame{Type: "error", Error: "invalid message type"})
		conn.Close(websocket.StatusUnsupportedData, "text frames only")
		return
	}
	var body simulateBody
	if err := json.Unmarshal(data, &body); err != nil || body.RobotAID == 0 || body.RobotBID == 0 {
		writeFrame(ctx, conn, &liveFrame{Type: "error", Error: "invalid simulation request"})
		conn.Close(websocket.StatusUnsupportedData, "invalid request")
		return
	}

	// The simulation runs in its own goroutine and publishes into a
	// buffered channel; the connection goroutine drains it so a slow
	// client never reaches into the engine.
	events := make(chan engine.Event, 512)
	sink := engine.SinkFunc(func(ev engine.Event) { events <- ev })

	type runOutcome struct {
		result *engine.MatchResult
		err    error
	}
	done := make(chan runOutcome, 1)
	go func() {
		res, err := service.SimulateMatch(h.repo, service.SimulateRequest{
			BotAID: body.RobotAID,
			BotBID: body.RobotBID,
			Config: h.matchConfigFor(body),
			Seed:   body.Seed,
		}, sink)
		close(events)
		done <- runOutcome{result: res, err: err}
	}()

	for ev := range events {
		ev := ev
		if err := writeFrame(ctx, conn, &liveFrame{Type: "event", Event: &ev}); err != nil {
			// Client went away; keep draining so the simulation
			// goroutine never blocks on the channel.
			for range events {
			}
			<-done
			return
		}
	}

	out := <-done
	if out.err != nil {
		writeFrame(ctx, conn, &liveFrame{Type: "error", Error: out.err.Error()})
		conn.Close(websocket.StatusNormalClosure, "simulation failed")
		return
	}
	if err := writeFrame(ctx, conn, &liveFrame{Type: "result", Result: out.result}); err != nil {
		return
	}
	conn.Close(websocket.StatusNormalClosure, "")
}

func writeFrame(ctx context.Context, conn *websocket.Conn, frame *liveFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}
