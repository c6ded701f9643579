package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/Shivansh-2508/PGT-Portal/internal/domain/entity"
)

var (
	rootStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true) // Cyan
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))           // Gray
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))           // Yellow
)

// secretKeys are masked when a session is printed
var secretKeys = []string{"password", "token", "secret"}

// RenderSessionTree renders a session record as a tree rooted at the user's
// display name and role.
func RenderSessionTree(s entity.Session) string {
	if len(s) == 0 {
		return keyStyle.Render("No session")
	}

	label := displayName(s)
	if role := s.UserType().Title(); role != "" {
		label = fmt.Sprintf("%s %s", label, keyStyle.Render("("+role+")"))
	}

	root := tree.Root(rootStyle.Render(label))
	addFields(root, s)
	return root.String()
}

func displayName(s entity.Session) string {
	for _, key := range []string{"name", "username"} {
		if v, ok := s[key].(string); ok && v != "" {
			return v
		}
	}
	if id := s.ID(); id != "" {
		return id
	}
	return "Unknown user"
}

func addFields(node *tree.Tree, fields map[string]any) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := fields[k].(type) {
		case map[string]any:
			child := tree.New().Root(keyStyle.Render(k + ":"))
			addFields(child, v)
			node.Child(child)
		default:
			node.Child(formatKeyValue(k+":", formatValue(k, v)))
		}
	}
}

func formatValue(key string, v any) string {
	lower := strings.ToLower(key)
	for _, secret := range secretKeys {
		if strings.Contains(lower, secret) {
			return "********"
		}
	}

	switch val := v.(type) {
	case nil:
		return "-"
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = fmt.Sprint(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case float64:
		// JSON numbers decode as float64; print integers without a fraction
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprint(val)
	default:
		return fmt.Sprint(val)
	}
}

func formatKeyValue(key, value string) string {
	return fmt.Sprintf("%s %s", keyStyle.Render(key), valueStyle.Render(value))
}
