package cmd

import (
	"fmt"
	"strings"

	blist "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bendaprile/recifree-cli/internal/grocery"
	shoplist "github.com/bendaprile/recifree-cli/internal/list"
)

const (
	minTUIWidth  = 56
	minTUIHeight = 18
)

var (
	tuiHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	tuiMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tuiHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tuiDoneStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

type tuiAisleItem struct {
	category grocery.Category
	count    int
	ordinal  int
}

func (a tuiAisleItem) FilterValue() string { return strings.ToLower(a.category.Name) }
func (a tuiAisleItem) Title() string {
	return fmt.Sprintf("%d. %s %s", a.ordinal, a.category.Icon, a.category.Name)
}
func (a tuiAisleItem) Description() string {
	return fmt.Sprintf("Aisle header • %d items", a.count)
}

type tuiShopItem struct {
	item        grocery.AggregatedItem
	aisle       string
	title       string
	description string
	filterValue string
}

func (s tuiShopItem) FilterValue() string { return s.filterValue }
func (s tuiShopItem) Title() string       { return s.title }
func (s tuiShopItem) Description() string { return s.description }

type shoppingTUIModel struct {
	store *shoplist.Store

	list blist.Model

	aisleStarts  []int
	visibleItems int

	showHelp   bool
	selectedID string
	status     string

	width, height int
	bodyHeight    int
	tooSmall      bool
}

func newShoppingTUIModel(store *shoplist.Store) shoppingTUIModel {
	delegate := blist.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(1)

	lst := blist.New([]blist.Item{}, delegate, 0, 0)
	lst.Title = "Shopping List"
	lst.SetStatusBarItemName("item", "items")
	lst.SetShowStatusBar(true)
	lst.SetFilteringEnabled(true)
	lst.SetShowHelp(false)
	lst.SetShowPagination(true)
	lst.DisableQuitKeybindings()

	m := shoppingTUIModel{
		store: store,
		list:  lst,
	}
	m.rebuild(true)
	return m
}

func (m shoppingTUIModel) Init() tea.Cmd {
	return nil
}

func (m shoppingTUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	}

	if keyMsg, isKey := msg.(tea.KeyMsg); isKey {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		filtering := m.list.FilterState() == blist.Filtering
		key := keyMsg.String()

		switch key {
		case "q":
			if !filtering {
				return m, tea.Quit
			}
		case "?":
			if !filtering {
				m.showHelp = !m.showHelp
				m.resize()
				return m, nil
			}
		case " ", "space":
			if !filtering {
				m.toggleSelected()
				return m, nil
			}
		case "x":
			if !filtering {
				m.removeSelected()
				return m, nil
			}
		case "c":
			if !filtering {
				removed := m.store.ClearChecked()
				m.status = fmt.Sprintf("removed %d checked items", removed)
				m.rebuild(false)
				return m, nil
			}
		case "]":
			if !filtering {
				if m.list.IsFiltered() {
					return m, m.list.NewStatusMessage("Clear the fuzzy filter before aisle jumps.")
				}
				m.jumpAisle(1)
				return m, nil
			}
		case "[":
			if !filtering {
				if m.list.IsFiltered() {
					return m, m.list.NewStatusMessage("Clear the fuzzy filter before aisle jumps.")
				}
				m.jumpAisle(-1)
				return m, nil
			}
		}

		if !filtering && len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if m.list.IsFiltered() {
				return m, m.list.NewStatusMessage("Clear the fuzzy filter before aisle jumps.")
			}
			m.jumpToAisle(int(key[0] - '1'))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.rememberSelection()
	return m, cmd
}

func (m shoppingTUIModel) View() string {
	if m.width == 0 || m.height == 0 {
		return tuiMetaStyle.Render("Loading interface...")
	}
	if m.tooSmall {
		return lipgloss.NewStyle().
			Padding(1, 2).
			Render(
				fmt.Sprintf(
					"Terminal too small (%dx%d).\nResize to at least %dx%d for the aisle view.",
					m.width, m.height, minTUIWidth, minTUIHeight,
				),
			)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		m.bodyView(),
		m.footerView(),
	)
}

func (m *shoppingTUIModel) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}

	m.tooSmall = m.width < minTUIWidth || m.height < minTUIHeight
	if m.tooSmall {
		return
	}

	headerH := 3
	footerH := 2
	if m.showHelp {
		footerH = 6
	}
	m.bodyHeight = maxInt(8, m.height-headerH-footerH-1)

	m.list.SetSize(maxInt(32, m.width-4), maxInt(6, m.bodyHeight-2))
}

func (m shoppingTUIModel) headerView() string {
	top := "recifree tui"
	bottom := fmt.Sprintf(
		"%d items on %d aisles  |  %d visible",
		m.store.ItemCount(), len(m.aisleStarts), m.visibleItems,
	)
	if m.status != "" {
		bottom += "  |  " + m.status
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(tuiHeaderStyle.Render(top) + "\n" + tuiMetaStyle.Render(bottom))
}

func (m shoppingTUIModel) bodyView() string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86")).
		Padding(0, 1)

	return border.
		Width(maxInt(minTUIWidth, m.width-2)).
		Height(m.bodyHeight).
		Render(m.list.View())
}

func (m shoppingTUIModel) footerView() string {
	base := "space check off • x remove • c clear checked • / fuzzy filter • [/] aisle jump • ? help • q quit"

	if !m.showHelp {
		return lipgloss.NewStyle().Padding(0, 1).Render(tuiHintStyle.Render(base))
	}

	lines := []string{
		"Key Help",
		"move: ↑/↓ or j/k • / fuzzy filter • esc cancel filter",
		"edit: space toggle every quantity of an item • x remove an item • c drop all checked items",
		"aisles: ] next aisle • [ previous aisle • 1..9 jump to numbered aisle header",
		"global: ? toggle help • q quit • ctrl+c force quit",
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(tuiHintStyle.Render(strings.Join(lines, "\n")))
}

// toggleSelected checks the selected item off, or unchecks it when every
// quantity is already checked. Each underlying quantity moves to the same
// state so partially checked items settle to fully checked first.
func (m *shoppingTUIModel) toggleSelected() {
	shop, ok := m.list.SelectedItem().(tuiShopItem)
	if !ok {
		return
	}

	target := !shop.item.AllChecked()
	for _, q := range shop.item.Quantities {
		if q.Checked != target {
			m.store.ToggleItem(q.RecipeID, q.ID)
		}
	}

	if target {
		m.status = fmt.Sprintf("checked %s", shop.item.DisplayName)
	} else {
		m.status = fmt.Sprintf("unchecked %s", shop.item.DisplayName)
	}
	m.rebuild(false)
}

func (m *shoppingTUIModel) removeSelected() {
	shop, ok := m.list.SelectedItem().(tuiShopItem)
	if !ok {
		return
	}

	for _, q := range shop.item.Quantities {
		m.store.RemoveItem(q.RecipeID, q.ID)
	}
	m.status = fmt.Sprintf("removed %s", shop.item.DisplayName)
	m.rebuild(false)
}

// rebuild regenerates the aisle-grouped list from the store, keeping the
// cursor on the same aggregated item across mutations when it survives.
func (m *shoppingTUIModel) rebuild(resetSelection bool) {
	currentID := m.selectedID

	items, starts, total := buildAisleListItems(m.store.ItemsByAisle())
	m.aisleStarts = starts
	m.visibleItems = total

	m.list.Title = fmt.Sprintf("Shopping List • %d items", total)
	m.list.SetItems(items)

	target := -1
	if !resetSelection && currentID != "" {
		target = findItemIndexByID(items, currentID)
	}
	if target < 0 {
		target = firstShopItemIndex(items)
	}
	if target < 0 && len(items) > 0 {
		target = 0
	}
	if target >= 0 {
		m.list.Select(target)
	}
	m.rememberSelection()
}

func (m *shoppingTUIModel) rememberSelection() {
	m.selectedID = stableIDForItem(m.list.SelectedItem())
}

func (m *shoppingTUIModel) jumpToAisle(index int) {
	if index < 0 || index >= len(m.aisleStarts) {
		return
	}

	target := firstShopIndexFrom(m.list.Items(), m.aisleStarts[index])
	if target < 0 {
		target = m.aisleStarts[index]
	}
	m.list.Select(target)
	m.rememberSelection()
}

func (m *shoppingTUIModel) jumpAisle(delta int) {
	if len(m.aisleStarts) == 0 {
		return
	}

	current := m.currentAisleIndex()
	if current < 0 {
		current = 0
	}
	next := current + delta
	if next < 0 {
		next = len(m.aisleStarts) - 1
	}
	if next >= len(m.aisleStarts) {
		next = 0
	}
	m.jumpToAisle(next)
}

func (m shoppingTUIModel) currentAisleIndex() int {
	if len(m.aisleStarts) == 0 {
		return -1
	}
	cursor := m.list.GlobalIndex()
	current := 0
	for i, start := range m.aisleStarts {
		if start <= cursor {
			current = i
			continue
		}
		break
	}
	return current
}

func buildAisleListItems(aisles []shoplist.Aisle) (items []blist.Item, starts []int, total int) {
	if len(aisles) == 0 {
		return nil, nil, 0
	}

	items = make([]blist.Item, 0, len(aisles)*4)
	starts = make([]int, 0, len(aisles))
	for idx, aisle := range aisles {
		starts = append(starts, len(items))

		items = append(items, tuiAisleItem{
			category: aisle.Category,
			count:    len(aisle.Items),
			ordinal:  idx + 1,
		})
		for _, item := range aisle.Items {
			items = append(items, buildTUIShopItem(item, aisle.Category.Name))
			total++
		}
	}

	return items, starts, total
}

func buildTUIShopItem(item grocery.AggregatedItem, aisle string) tuiShopItem {
	title := shoplist.Marker(item) + " " + item.DisplayName
	if item.AllChecked() {
		title = tuiDoneStyle.Render(title)
	}

	descParts := []string{}
	if qty := item.QuantityLabel(); qty != "" {
		descParts = append(descParts, qty)
	}
	descParts = append(descParts, "from "+strings.Join(item.Sources, ", "))

	filterTokens := []string{
		item.DisplayName,
		item.NormalizedName,
		strings.Join(item.Sources, " "),
		aisle,
	}

	return tuiShopItem{
		item:        item,
		aisle:       aisle,
		title:       title,
		description: strings.Join(descParts, "  •  "),
		filterValue: strings.ToLower(strings.Join(filterTokens, " ")),
	}
}

func findItemIndexByID(items []blist.Item, stableID string) int {
	for i, item := range items {
		if stableIDForItem(item) == stableID {
			return i
		}
	}
	return -1
}

func firstShopItemIndex(items []blist.Item) int {
	return firstShopIndexFrom(items, 0)
}

func firstShopIndexFrom(items []blist.Item, start int) int {
	for i := start; i < len(items); i++ {
		if _, ok := items[i].(tuiShopItem); ok {
			return i
		}
	}
	return -1
}

func stableIDForItem(item blist.Item) string {
	switch value := item.(type) {
	case tuiShopItem:
		return "item:" + value.item.NormalizedName
	case tuiAisleItem:
		return "aisle:" + value.category.ID
	default:
		return ""
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
