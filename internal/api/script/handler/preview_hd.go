package scriptHandler

import (
	"ScriptForge/internal/api/script"
	"strings"
	"time"

	"github.com/gofiber/websocket/v2"
)

type previewLine struct {
	Line string `json:"line,omitempty"`
	Done bool   `json:"done,omitempty"`
}

// handlePreviewWebSocket streams a rule-based script line by line so the
// client can render the preview as it is assembled. Each inbound message
// is a generation request; the stream ends with a done marker.
func (h *ScriptsHandler) handlePreviewWebSocket(c *websocket.Conn) {
	h.log.Info("Script preview WebSocket client connected")
	defer h.log.Info("Script preview WebSocket client disconnected")

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		var req scripts.GenerateScriptRequest
		if err := c.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Preview WebSocket error: %v", err)
			} else {
				h.log.Info("Preview WebSocket connection closed")
			}
			break
		}

		if err := h.validator.StructPartial(req, "VoiceID", "ScriptType", "CallType", "ProductInfo"); err != nil {
			if writeErr := c.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
				h.log.Errorf("Error sending validation error: %v", writeErr)
				break
			}
			continue
		}

		res, err := h.scriptsService.PreviewScript(req)
		if err != nil {
			if writeErr := c.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		failed := false
		for _, line := range strings.Split(res.Script, "\n") {
			if err := c.WriteJSON(previewLine{Line: line}); err != nil {
				h.log.Errorf("Error streaming preview line: %v", err)
				failed = true
				break
			}
		}
		if failed {
			break
		}

		if err := c.WriteJSON(previewLine{Done: true}); err != nil {
			h.log.Errorf("Error sending done marker: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}
