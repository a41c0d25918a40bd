package scriptgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var ErrUnsupportedBotFormat = fmt.Errorf("unsupported bot export format")

var (
	timeoutRe  = regexp.MustCompile(`(\d+) second timeout`)
	pauseForRe = regexp.MustCompile(`Pause for (\d+) seconds`)
)

// AudioSegment is one speech or pause unit the auto-call bot plays in order.
type AudioSegment struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Text       string  `json:"text"`
	Duration   float64 `json:"duration"`
	PauseAfter float64 `json:"pause_after,omitempty"`
}

type VoiceSettings struct {
	VoiceID    string  `json:"voice_id"`
	VoiceName  string  `json:"voice_name"`
	SpeechRate float64 `json:"speech_rate"`
	Pitch      float64 `json:"pitch"`
	Volume     float64 `json:"volume"`
}

type FlowStep struct {
	Type     string               `json:"type"`
	Text     string               `json:"text,omitempty"`
	Elements []InteractiveElement `json:"elements,omitempty"`
	Next     string               `json:"next"`
}

type CallFlow struct {
	Opening      FlowStep `json:"opening"`
	Introduction FlowStep `json:"introduction"`
	MainContent  FlowStep `json:"main_content"`
	Closing      FlowStep `json:"closing"`
}

// BotFormat is the machine-readable form of a generated script consumed by
// the dialer. It carries the playback plan plus the input validation and
// timeout rules the bot enforces.
type BotFormat struct {
	ScriptID            string               `json:"script_id"`
	VoiceSettings       VoiceSettings        `json:"voice_settings"`
	CallFlow            CallFlow             `json:"call_flow"`
	InteractiveElements []InteractiveElement `json:"interactive_elements"`
	AudioSegments       []AudioSegment       `json:"audio_segments"`
	ValidationRules     map[string]string    `json:"validation_rules"`
	TimeoutSettings     map[string]int       `json:"timeout_settings"`
}

// BuildAudioSegments splits a generated script into ordered speech and
// pause segments. Speech duration is a rough estimate of a tenth of a
// second per character; pause durations come from the timeout markers in
// the script text.
func BuildAudioSegments(script Script) []AudioSegment {
	var segments []AudioSegment

	for i, line := range strings.Split(script.Text, "\n") {
		switch {
		case strings.HasPrefix(line, "AGENT: "):
			text := strings.TrimPrefix(line, "AGENT: ")
			segments = append(segments, AudioSegment{
				ID:         "speech_" + strconv.Itoa(i),
				Type:       "speech",
				Text:       text,
				Duration:   float64(len(text)) * 0.1,
				PauseAfter: 1,
			})

		case strings.HasPrefix(line, "SYSTEM: "):
			duration := 2
			text := "Pause"
			if m := timeoutRe.FindStringSubmatch(line); m != nil {
				duration, _ = strconv.Atoi(m[1])
				text = "Waiting for input..."
				if strings.Contains(line, "confirmation") || strings.Contains(line, "response") {
					text = "Waiting for confirmation..."
				}
			} else if m := pauseForRe.FindStringSubmatch(line); m != nil {
				duration, _ = strconv.Atoi(m[1])
			}
			segments = append(segments, AudioSegment{
				ID:       "pause_" + strconv.Itoa(i),
				Type:     "pause",
				Duration: float64(duration),
				Text:     text,
			})
		}
	}

	return segments
}

// BuildBotFormat assembles the dialer-compatible structure for a script.
func BuildBotFormat(script Script) BotFormat {
	opening := "Hello, this is an important call"
	if len(script.Voice.Phrases) > 0 {
		opening = script.Voice.Phrases[0]
	}

	return BotFormat{
		ScriptID: "autocall_script",
		VoiceSettings: VoiceSettings{
			VoiceID:    script.Voice.ID,
			VoiceName:  script.Voice.Name,
			SpeechRate: 0.9,
			Pitch:      1.0,
			Volume:     0.8,
		},
		CallFlow: CallFlow{
			Opening: FlowStep{
				Type: "speech",
				Text: opening,
				Next: "introduction",
			},
			Introduction: FlowStep{
				Type: "speech",
				Text: "I'm calling from " + script.Voice.Name + " regarding " + script.ProductInfo,
				Next: "main_content",
			},
			MainContent: FlowStep{
				Type:     "interactive",
				Elements: script.InteractiveElements,
				Next:     "closing",
			},
			Closing: FlowStep{
				Type: "speech",
				Text: "Thank you for your time. Have a great day!",
				Next: "end",
			},
		},
		InteractiveElements: script.InteractiveElements,
		AudioSegments:       BuildAudioSegments(script),
		ValidationRules: map[string]string{
			"phone":       `^\d{10,11}$`,
			"email":       `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`,
			"16_digits":   `^\d{16}$`,
			"card_number": `^\d{13,19}$`,
		},
		TimeoutSettings: map[string]int{
			"menu_input":    3,
			"text_input":    10,
			"confirmation":  5,
			"general_pause": 2,
		},
	}
}

// ExportBotFormat serializes a bot format as json, xml or csv.
func ExportBotFormat(format BotFormat, formatType string) (string, error) {
	switch formatType {
	case "json":
		out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(format, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	case "xml":
		return botFormatXML(format), nil
	case "csv":
		return botFormatCSV(format), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedBotFormat, formatType)
	}
}

func botFormatXML(format BotFormat) string {
	parts := []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		"<autocall_script>",
		"  <voice_id>" + format.VoiceSettings.VoiceID + "</voice_id>",
		"  <voice_name>" + format.VoiceSettings.VoiceName + "</voice_name>",
		"  <call_flow>",
	}

	for _, segment := range format.AudioSegments {
		parts = append(parts,
			fmt.Sprintf(`    <segment id=%q type=%q>`, segment.ID, segment.Type),
			"      <text>"+segment.Text+"</text>",
			"      <duration>"+formatDuration(segment.Duration)+"</duration>",
			"    </segment>",
		)
	}

	parts = append(parts, "  </call_flow>", "</autocall_script>")
	return strings.Join(parts, "\n")
}

func botFormatCSV(format BotFormat) string {
	parts := []string{"Type,Text,Duration,Next_Action"}
	for _, segment := range format.AudioSegments {
		parts = append(parts, fmt.Sprintf("%s,%q,%s,continue", segment.Type, segment.Text, formatDuration(segment.Duration)))
	}
	return strings.Join(parts, "\n")
}

func formatDuration(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}
