package command

import "strings"

type Route int

const (
	RoutePing Route = iota
	RouteList
	RouteFind
	RouteAdd
	RouteHelp
)

var prefixes = []struct {
	prefix string
	route  Route
}{
	{"list", RouteList},
	{"find ", RouteFind},
	{"add ", RouteAdd},
	{"help", RouteHelp},
}

// Match picks the sub-command for text by case-sensitive prefix, first match
// wins. The returned argument is what follows the prefix. Empty text asks for
// help and anything unknown is only acknowledged.
func Match(text string) (Route, string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return RouteHelp, ""
	}

	for _, p := range prefixes {
		if strings.HasPrefix(text, p.prefix) {
			return p.route, strings.TrimSpace(text[len(p.prefix):])
		}
	}

	return RoutePing, text
}

func (r Route) String() string {
	switch r {
	case RouteList:
		return "list"
	case RouteFind:
		return "find"
	case RouteAdd:
		return "add"
	case RouteHelp:
		return "help"
	default:
		return "ping"
	}
}
