package tui

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TerminalImageProtocol identifies the inline-image protocol the terminal
// speaks, if any.
type TerminalImageProtocol int

const (
	ProtocolNone TerminalImageProtocol = iota
	ProtocolKitty
	ProtocolITerm2
)

// DetectImageProtocol sniffs the terminal's inline-image support from its
// environment. Ghostty speaks the Kitty protocol.
func DetectImageProtocol() TerminalImageProtocol {
	termProgram := os.Getenv("TERM_PROGRAM")
	term := os.Getenv("TERM")

	if strings.Contains(term, "kitty") || termProgram == "ghostty" {
		return ProtocolKitty
	}
	if termProgram == "iTerm.app" {
		return ProtocolITerm2
	}
	return ProtocolNone
}

// CoverState tracks the lifecycle of a cover fetch. A cover moves from
// loading to exactly one of loaded or errored and then stays there, so a
// broken URL is fetched at most once per session.
type CoverState int

// Cover fetch states
const (
	CoverLoading CoverState = iota
	CoverLoaded
	CoverErrored
)

// coverLoadedMsg carries fetched image bytes for a book.
type coverLoadedMsg struct {
	bookID int
	data   []byte
}

// coverErroredMsg marks a cover URL as permanently failed for this session.
type coverErroredMsg struct {
	bookID int
}

var coverClient = &http.Client{Timeout: 8 * time.Second}

// fetchCover downloads a cover image. Any failure latches the errored state.
func fetchCover(bookID int, url string) tea.Cmd {
	return func() tea.Msg {
		if url == "" {
			return coverErroredMsg{bookID: bookID}
		}
		resp, err := coverClient.Get(url)
		if err != nil {
			return coverErroredMsg{bookID: bookID}
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return coverErroredMsg{bookID: bookID}
		}
		data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
		if err != nil || len(data) == 0 {
			return coverErroredMsg{bookID: bookID}
		}
		return coverLoadedMsg{bookID: bookID, data: data}
	}
}

// RenderInlineImageBytes turns raw image bytes into the escape sequence the
// terminal needs, or "" when nothing can be drawn.
func RenderInlineImageBytes(data []byte, protocol TerminalImageProtocol) string {
	if len(data) == 0 {
		return ""
	}
	switch protocol {
	case ProtocolKitty:
		return renderKittyImage(data)
	case ProtocolITerm2:
		return renderITerm2Image(data)
	}
	return ""
}

// Kitty graphics: a=T transmit and display, f=100 PNG/JPEG, t=f inline data.
func renderKittyImage(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("\x1b_Ga=T,f=100,t=f;%s\x1b\\", encoded)
}

// iTerm2 inline images: OSC 1337 File with base64 payload.
func renderITerm2Image(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("\x1b]1337;File=inline=1;width=30px:%s\x07", encoded)
}

// CoverPlaceholder renders the fallback shown while a cover loads or after
// its fetch failed.
func CoverPlaceholder(state CoverState) string {
	switch state {
	case CoverLoading:
		return StyleHelp.Render("⌛ couverture…")
	case CoverErrored:
		return StyleHelp.Render("📚 (pas de couverture)")
	default:
		return ""
	}
}
