package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/kitround/director/internal/client"
	chatstore "github.com/kitround/director/internal/service/chat"
)

// Canned prompts matching the web UI templates.
var templates = []struct {
	Label  string
	Prompt string
}{
	{"Visa pitch + numbers", "Draft a Visa partnership proposal with a short metrics box (traffic uplift assumptions) for kitround."},
	{"Board KPI update", "Summarise last email's impact on site traffic for the board. Keep it to one slide with a table."},
	{"Grassroots rugby idea", "Design a grassroots rugby campaign to increase kitflow and community engagement."},
}

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

type app struct {
	store    *chatstore.Store
	api      *client.Client
	renderer *glamour.TermRenderer
	mode     string
}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "Director API base URL")
	statePath := flag.String("state", "", "chat state file (defaults to the user config dir)")
	flag.Parse()

	path := *statePath
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			log.Fatalf("failed to resolve config dir: %v", err)
		}
		path = filepath.Join(dir, "kitround", "chats.json")
	}

	store, err := chatstore.NewStore(path)
	if err != nil {
		log.Fatalf("failed to open chat state: %v", err)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Fatalf("failed to create renderer: %v", err)
	}

	a := &app{
		store:    store,
		api:      client.New(*addr),
		renderer: renderer,
	}
	a.run()
}

func (a *app) run() {
	fmt.Println(labelStyle.Render("kitround Director"))
	fmt.Println(faintStyle.Render("Type a message, or /help for commands."))

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		a.printPrompt()
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			if a.command(line) {
				return
			}
			continue
		}
		a.send(line)
	}
}

func (a *app) printPrompt() {
	session, err := a.store.Active()
	title := "?"
	if err == nil {
		title = session.Title
	}
	mode := a.mode
	if mode == "" {
		mode = "Auto"
	}
	fmt.Printf("%s ", faintStyle.Render(fmt.Sprintf("[%s | %s]>", title, mode)))
}

// command dispatches a slash command; it reports whether the app should quit.
func (a *app) command(line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/quit", "/exit":
		return true
	case "/new":
		a.store.NewChat()
	case "/list":
		for i, session := range a.store.Sessions() {
			fmt.Printf("%2d  %s  %s\n", i+1, session.Title,
				faintStyle.Render(session.UpdatedAt.Local().Format("2006-01-02 15:04")))
		}
	case "/open":
		sessions := a.store.Sessions()
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(sessions) {
			fmt.Println(errStyle.Render("usage: /open <number from /list>"))
			break
		}
		if err := a.store.SetActive(sessions[n-1].ID); err != nil {
			fmt.Println(errStyle.Render(err.Error()))
		}
	case "/rename":
		if arg == "" {
			fmt.Println(errStyle.Render("usage: /rename <title>"))
			break
		}
		if session, err := a.store.Active(); err == nil {
			a.store.Rename(session.ID, arg)
		}
	case "/delete":
		if session, err := a.store.Active(); err == nil {
			a.store.Delete(session.ID)
		}
	case "/mode":
		// Unknown modes are fine: the server ignores them and routing
		// falls back to the Director's own judgment.
		if arg == "" || strings.EqualFold(arg, "auto") {
			a.mode = ""
		} else {
			a.mode = strings.ToUpper(arg)
		}
	case "/templates":
		for i, t := range templates {
			fmt.Printf("%2d  %s\n    %s\n", i+1, t.Label, faintStyle.Render(t.Prompt))
		}
	case "/template":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(templates) {
			fmt.Println(errStyle.Render("usage: /template <number from /templates>"))
			break
		}
		a.send(templates[n-1].Prompt)
	case "/help":
		fmt.Println("commands: /new /list /open N /rename TITLE /delete /mode NAME /templates /template N /quit")
	default:
		fmt.Println(errStyle.Render("unknown command, try /help"))
	}
	return false
}

func (a *app) send(text string) {
	fmt.Println(faintStyle.Render("Thinking..."))

	reply, err := a.store.Send(context.Background(), a.api, text, a.mode)
	if err != nil {
		fmt.Println(errStyle.Render(err.Error()))
		return
	}

	fmt.Println(labelStyle.Render("Director"))
	rendered, err := a.renderer.Render(reply)
	if err != nil {
		fmt.Println(reply)
		return
	}
	fmt.Print(rendered)
}
