package view

import (
	"html/template"
	"strconv"

	"github.com/gyansetu/website/internal/anim"
	"github.com/gyansetu/website/internal/theme"
)

// Op is a client command.
type Op string

const (
	OpAttr     Op = "attr"
	OpSwap     Op = "swap"
	OpNavigate Op = "navigate"
	OpReload   Op = "reload"
	OpScroll   Op = "scroll"
	OpScrollTo Op = "scrollTo"
	OpAnimate  Op = "animate"
	OpRemove   Op = "remove"
	OpListen   Op = "listen"
	OpUnlisten Op = "unlisten"
)

// Command is one instruction for the live client. The client applies a
// batch strictly in order.
type Command struct {
	Op       Op             `json:"op"`
	Target   string         `json:"target,omitempty"`
	Name     string         `json:"name,omitempty"`
	Value    string         `json:"value,omitempty"`
	HTML     template.HTML  `json:"html,omitempty"`
	Path     string         `json:"path,omitempty"`
	Title    string         `json:"title,omitempty"`
	X        int            `json:"x,omitempty"`
	Y        int            `json:"y,omitempty"`
	Smooth   bool           `json:"smooth,omitempty"`
	Timeline *anim.Timeline `json:"timeline,omitempty"`
}

// Attr sets an attribute on the elements matching target.
func Attr(target, name, value string) Command {
	return Command{Op: OpAttr, Target: target, Name: name, Value: value}
}

// Swap replaces the inner HTML of target.
func Swap(target string, html template.HTML) Command {
	return Command{Op: OpSwap, Target: target, HTML: html}
}

// Navigate pushes path onto the browser history without reloading.
func Navigate(path, title string) Command {
	return Command{Op: OpNavigate, Path: path, Title: title}
}

// Reload asks the client to load path from the server.
func Reload(path string) Command {
	return Command{Op: OpReload, Path: path}
}

// ScrollTop resets the viewport to the top-left corner.
func ScrollTop() Command {
	return Command{Op: OpScroll}
}

// ScrollTo smooth-scrolls to the element with the given id.
func ScrollTo(anchor string) Command {
	return Command{Op: OpScrollTo, Target: anchor, Smooth: true}
}

// Animate starts a timeline.
func Animate(t anim.Timeline) Command {
	return Command{Op: OpAnimate, Name: t.Name, Timeline: &t}
}

// Remove deletes target from the document.
func Remove(target string) Command {
	return Command{Op: OpRemove, Target: target}
}

// Listen attaches a global listener.
func Listen(l anim.Listener) Command {
	return Command{Op: OpListen, Name: string(l)}
}

// Unlisten detaches a global listener.
func Unlisten(l anim.Listener) Command {
	return Command{Op: OpUnlisten, Name: string(l)}
}

// ThemeCommands applies mode to the document root.
func ThemeCommands(m theme.Mode) []Command {
	return []Command{
		Attr("html", "data-theme", string(m)),
		Attr("html", "class", theme.RootClass(m)),
	}
}

// MenuCommand reflects the mobile menu state.
func MenuCommand(open bool) Command {
	return Attr("#nav-menu", "data-open", strconv.FormatBool(open))
}
