package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/TheFirstLairron/Rusty-Rogues/internal/fov"
	"github.com/TheFirstLairron/Rusty-Rogues/internal/storage"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/combat"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/dungeon"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/engine"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
)

// uiMode is the modal state of the console: exactly one mode owns the
// keyboard at a time.
type uiMode int

const (
	modeMenu uiMode = iota
	modePlaying
	modeInventory
	modeCharacter
	modeLevelUp
	modeTargeting
	modeQuit
)

// invPurpose selects what the inventory modal does with the chosen
// item.
type invPurpose int

const (
	invUse invPurpose = iota
	invDrop
)

const (
	logLines = 5
	barWidth = 20
)

// Terrain colors.
const (
	colorDarkWall    = "17"
	colorLightWall   = "136"
	colorDarkGround  = "60"
	colorLightGround = "178"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	hpFilledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("124"))

	hpEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("52"))
)

var menuOptions = []string{"Play a new game", "Continue last game", "Quit"}

var titleCaser = cases.Title(language.English)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	store storage.Storage
	eng   *engine.Engine

	oracle  *fov.Oracle
	mode    uiMode
	width   int
	height  int
	logView viewport.Model

	selectedOption int
	menuErr        string

	invPurpose  invPurpose
	pendingItem int

	// mode to return to when the quit modal is dismissed
	quitReturn uiMode
}

func NewConsoleUI(store storage.Storage) ConsoleUI {
	logView := viewport.New(dungeon.MapWidth, logLines)
	logView.MouseWheelEnabled = true

	return ConsoleUI{
		store:       store,
		mode:        modeMenu,
		pendingItem: -1,
		logView:     logView,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return nil
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = min(msg.Width, 100)
		if m.eng != nil {
			m.syncLog()
		}
		return m, nil
	}

	switch m.mode {
	case modeMenu:
		return m.updateMenu(msg)
	case modePlaying:
		return m.updatePlaying(msg)
	case modeInventory:
		return m.updateInventory(msg)
	case modeCharacter:
		return m.updateCharacter(msg)
	case modeLevelUp:
		return m.updateLevelUp(msg)
	case modeTargeting:
		return m.updateTargeting(msg)
	case modeQuit:
		return m.updateQuit(msg)
	}
	return m, nil
}

// startGame wires a fresh or resumed engine into the UI.
func (m *ConsoleUI) startGame(eng *engine.Engine) {
	m.eng = eng
	m.oracle = fov.New(eng.GS.Map.Width, eng.GS.Map.Height)
	m.refreshFOV()
	m.syncLog()
	m.mode = modePlaying
	m.menuErr = ""
}

func (m *ConsoleUI) refreshFOV() {
	px, py := m.eng.Player().Pos()
	m.oracle.Recompute(m.eng.GS.Map, px, py, fov.TorchRadius)
	m.eng.FOV = m.oracle
}

// step runs one engine action with visibility current on both sides of
// the turn, then routes to the level-up modal when a choice is due.
func (m *ConsoleUI) step(a engine.Action) {
	m.refreshFOV()
	if m.eng.UI == nil {
		m.eng.UI = combat.SingleShot(combat.InputEvent{Kind: combat.EventCancel})
	}
	m.eng.Step(a)
	m.eng.UI = nil
	m.refreshFOV()
	m.syncLog()

	if m.eng.NeedsLevelUp() {
		m.mode = modeLevelUp
	}
}

// syncLog reflows the full message history into the scrollable log
// panel and follows the newest line.
func (m *ConsoleUI) syncLog() {
	width := m.logView.Width
	if width <= 0 {
		width = dungeon.MapWidth
	}

	var lines []string
	for _, msg := range m.eng.GS.Log {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(msg.Color))
		for _, line := range strings.Split(wordwrap.String(msg.Text, width), "\n") {
			lines = append(lines, style.Render(line))
		}
	}
	m.logView.SetContent(strings.Join(lines, "\n"))
	m.logView.GotoBottom()
}

func (m *ConsoleUI) saveGame() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = m.store.SaveGame(ctx, m.eng.GS.ID, &storage.SavedGame{
		Entities: m.eng.Entities,
		State:    m.eng.GS,
	})
}

func (m ConsoleUI) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyUp:
		if m.selectedOption > 0 {
			m.selectedOption--
		}
	case tea.KeyDown:
		if m.selectedOption < len(menuOptions)-1 {
			m.selectedOption++
		}
	case tea.KeyEnter:
		switch m.selectedOption {
		case 0:
			eng, err := engine.NewGame(uint64(time.Now().UnixNano()))
			if err != nil {
				m.menuErr = err.Error()
				return m, nil
			}
			m.startGame(eng)
		case 1:
			eng, err := m.loadLastGame()
			if err != nil {
				m.menuErr = "No saved game to load."
				return m, nil
			}
			m.startGame(eng)
		case 2:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *ConsoleUI) loadLastGame() (*engine.Engine, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := m.store.LatestID(ctx)
	if err != nil {
		return nil, err
	}
	save, err := m.store.LoadGame(ctx, id)
	if err != nil {
		return nil, err
	}
	return engine.Resume(save.Entities, save.State, uint64(time.Now().UnixNano())), nil
}

func (m ConsoleUI) updatePlaying(msg tea.Msg) (tea.Model, tea.Cmd) {
	if mouse, ok := msg.(tea.MouseMsg); ok {
		// Wheel scrolling through the message history.
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(mouse)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitReturn = modePlaying
		m.mode = modeQuit
		return m, nil
	case tea.KeyUp:
		m.step(engine.Action{Kind: engine.ActionMove, DY: -1})
	case tea.KeyDown:
		m.step(engine.Action{Kind: engine.ActionMove, DY: 1})
	case tea.KeyLeft:
		m.step(engine.Action{Kind: engine.ActionMove, DX: -1})
	case tea.KeyRight:
		m.step(engine.Action{Kind: engine.ActionMove, DX: 1})
	case tea.KeyHome:
		m.step(engine.Action{Kind: engine.ActionMove, DX: -1, DY: -1})
	case tea.KeyPgUp:
		m.step(engine.Action{Kind: engine.ActionMove, DX: 1, DY: -1})
	case tea.KeyEnd:
		m.step(engine.Action{Kind: engine.ActionMove, DX: -1, DY: 1})
	case tea.KeyPgDown:
		m.step(engine.Action{Kind: engine.ActionMove, DX: 1, DY: 1})
	default:
		switch key.String() {
		case "z", " ":
			m.step(engine.Action{Kind: engine.ActionWait})
		case "g":
			m.step(engine.Action{Kind: engine.ActionPickup})
		case "i":
			m.invPurpose = invUse
			m.mode = modeInventory
		case "d":
			m.invPurpose = invDrop
			m.mode = modeInventory
		case "c":
			m.mode = modeCharacter
		case "<":
			m.step(engine.Action{Kind: engine.ActionDescend})
		}
	}
	return m, nil
}

func (m ConsoleUI) updateInventory(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	s := key.String()
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
		idx := int(s[0] - 'a')
		if idx < len(m.eng.GS.Inventory) {
			m.mode = modePlaying
			if m.invPurpose == invDrop {
				m.step(engine.Action{Kind: engine.ActionDrop, Index: idx})
				return m, nil
			}
			if combat.NeedsTarget(m.eng.GS.Inventory[idx].Item) {
				m.pendingItem = idx
				m.mode = modeTargeting
				return m, nil
			}
			m.step(engine.Action{Kind: engine.ActionUse, Index: idx})
			return m, nil
		}
	}

	// Any other key closes the menu.
	m.mode = modePlaying
	return m, nil
}

func (m ConsoleUI) updateCharacter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.mode = modePlaying
	}
	return m, nil
}

func (m ConsoleUI) updateLevelUp(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var choice engine.Improvement
	switch key.String() {
	case "a":
		choice = engine.ImproveHP
	case "b":
		choice = engine.ImprovePower
	case "c":
		choice = engine.ImproveDefense
	default:
		return m, nil
	}

	if err := m.eng.ApplyLevelUp(choice); err == nil && !m.eng.NeedsLevelUp() {
		m.mode = modePlaying
	}
	return m, nil
}

func (m ConsoleUI) updateTargeting(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			m.pendingItem = -1
			m.mode = modePlaying
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonRight:
			m.pendingItem = -1
			m.mode = modePlaying
		case tea.MouseButtonLeft:
			if !m.validTarget(msg.X, msg.Y) {
				return m, nil
			}
			idx := m.pendingItem
			m.pendingItem = -1
			m.mode = modePlaying
			m.eng.UI = combat.SingleShot(combat.InputEvent{
				Kind: combat.EventLeftClick,
				X:    msg.X,
				Y:    msg.Y,
			})
			m.step(engine.Action{Kind: engine.ActionUse, Index: idx})
		}
	}
	return m, nil
}

// validTarget prechecks a click so the targeting mode stays open on a
// miss instead of cancelling the item.
func (m *ConsoleUI) validTarget(x, y int) bool {
	if !m.eng.GS.Map.InBounds(x, y) || !m.oracle.IsVisible(x, y) {
		return false
	}

	kind := m.eng.GS.Inventory[m.pendingItem].Item
	switch kind {
	case entity.ItemConfuse:
		if m.eng.Player().Distance(x, y) > float64(combat.ConfuseRange) {
			return false
		}
		for i := range m.eng.Entities {
			e := &m.eng.Entities[i]
			if i != entity.PlayerIndex && e.Fighter != nil && e.X == x && e.Y == y {
				return true
			}
		}
		return false
	default:
		return true
	}
}

func (m ConsoleUI) updateQuit(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.saveGame()
		return m, tea.Quit
	case "n", "N":
		m.mode = m.quitReturn
	default:
		if key.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ConsoleUI) View() string {
	switch m.mode {
	case modeMenu:
		return m.renderMenu()
	case modeQuit:
		return m.renderQuitModal()
	case modeInventory:
		return m.renderInventoryModal()
	case modeCharacter:
		return m.renderCharacterModal()
	case modeLevelUp:
		return m.renderLevelUpModal()
	}
	return m.renderGame()
}

func (m ConsoleUI) renderMenu() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("TOMBS OF THE ANCIENT KINGS"))
	content.WriteString("\n\n")

	for i, option := range menuOptions {
		if i == m.selectedOption {
			content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", option)))
		} else {
			content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", option)))
		}
		content.WriteString("\n")
	}

	if m.menuErr != "" {
		content.WriteString("\n")
		content.WriteString(errorStyle.Render(m.menuErr))
	}

	content.WriteString("\n")
	content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Esc to exit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderQuitModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Your progress will be saved.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to save and quit, N to keep playing"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderInventoryModal() string {
	var content strings.Builder
	if m.invPurpose == invUse {
		content.WriteString(modalTitleStyle.Render("Inventory"))
		content.WriteString("\n\n")
		content.WriteString("Press the key next to an item to use it, or any other key to cancel.")
	} else {
		content.WriteString(modalTitleStyle.Render("Drop Item"))
		content.WriteString("\n\n")
		content.WriteString("Press the key next to an item to drop it, or any other key to cancel.")
	}
	content.WriteString("\n\n")

	if len(m.eng.GS.Inventory) == 0 {
		content.WriteString(promptStyle.Render("Inventory is empty."))
	} else {
		for i := range m.eng.GS.Inventory {
			it := &m.eng.GS.Inventory[i]
			name := titleCaser.String(it.Name)
			if it.Equipment != nil && it.Equipment.Equipped {
				name = fmt.Sprintf("%s (on %s)", name, it.Equipment.Slot)
			}
			content.WriteString(modalItemStyle.Render(fmt.Sprintf("(%c) %s", 'a'+i, name)))
			content.WriteString("\n")
		}
	}

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderCharacterModal() string {
	player := m.eng.Player()
	f := player.Fighter
	inv := m.eng.GS.Inventory

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Character Information"))
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("Level: %d\n", player.Level))
	content.WriteString(fmt.Sprintf("Experience: %d\n", f.XP))
	content.WriteString(fmt.Sprintf("Experience to level up: %d\n", m.eng.LevelUpThreshold()))
	content.WriteString(fmt.Sprintf("Maximum HP: %d\n", player.MaxHP(inv)))
	content.WriteString(fmt.Sprintf("Attack: %d\n", player.Power(inv)))
	content.WriteString(fmt.Sprintf("Defense: %d\n", player.Defense(inv)))
	content.WriteString("\n")
	content.WriteString(promptStyle.Render("Press any key to continue"))

	modal := modalStyle.Width(40).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderLevelUpModal() string {
	f := m.eng.Player().Fighter

	options := []string{
		fmt.Sprintf("(a) Constitution (+20 HP, from %d)", f.BaseMaxHP),
		fmt.Sprintf("(b) Strength (+1 attack, from %d)", f.BasePower),
		fmt.Sprintf("(c) Agility (+1 defense, from %d)", f.BaseDefense),
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Level Up!"))
	content.WriteString("\n\n")
	content.WriteString("Your battle skills grow stronger! Choose a stat to raise:")
	content.WriteString("\n\n")
	for _, option := range options {
		content.WriteString(modalItemStyle.Render(option))
		content.WriteString("\n")
	}

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderGame() string {
	if m.eng == nil {
		return "\n  Initializing..."
	}

	var view strings.Builder
	view.WriteString(m.renderMap())
	view.WriteString("\n")
	view.WriteString(m.renderStatus())
	view.WriteString("\n")
	view.WriteString(m.renderLog())

	if m.mode == modeTargeting {
		view.WriteString("\n")
		switch m.eng.GS.Inventory[m.pendingItem].Item {
		case entity.ItemConfuse:
			view.WriteString(titleStyle.Render("Left-click an enemy to confuse it, or right-click to cancel."))
		default:
			view.WriteString(titleStyle.Render("Left-click a target tile for the fireball, or right-click to cancel."))
		}
	}

	return view.String()
}

func (m ConsoleUI) renderMap() string {
	gm := m.eng.GS.Map
	var rows strings.Builder

	for y := 0; y < gm.Height; y++ {
		for x := 0; x < gm.Width; x++ {
			visible := m.oracle.IsVisible(x, y)
			tile := &gm.Tiles[x][y]

			if e := m.entityAt(x, y, visible, tile.Explored); e != nil {
				rows.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(e.Color)).
					Render(string(e.Glyph)))
				continue
			}

			switch {
			case !tile.Explored && !visible:
				rows.WriteByte(' ')
			case tile.BlocksSight:
				color := colorDarkWall
				if visible {
					color = colorLightWall
				}
				rows.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(color)).
					Render("#"))
			default:
				color := colorDarkGround
				if visible {
					color = colorLightGround
				}
				rows.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(color)).
					Render("."))
			}
		}
		if y < gm.Height-1 {
			rows.WriteByte('\n')
		}
	}
	return rows.String()
}

// entityAt picks the entity to draw on this cell, blocking entities on
// top of corpses and items.
func (m ConsoleUI) entityAt(x, y int, visible, explored bool) *entity.Entity {
	var chosen *entity.Entity
	for i := range m.eng.Entities {
		e := &m.eng.Entities[i]
		if e.X != x || e.Y != y {
			continue
		}
		if !visible && !(e.AlwaysVisible && explored) {
			continue
		}
		if chosen == nil || (!chosen.Blocks && e.Blocks) {
			chosen = e
		}
	}
	return chosen
}

func (m ConsoleUI) renderStatus() string {
	player := m.eng.Player()
	inv := m.eng.GS.Inventory
	hp := player.Fighter.HP
	maxHP := player.MaxHP(inv)

	filled := 0
	if maxHP > 0 {
		filled = hp * barWidth / maxHP
	}
	filled = max(min(filled, barWidth), 0)

	bar := hpFilledStyle.Render(strings.Repeat(" ", filled)) +
		hpEmptyStyle.Render(strings.Repeat(" ", barWidth-filled))

	return fmt.Sprintf("HP: %d/%d %s  Dungeon level: %d", hp, maxHP, bar, m.eng.GS.DungeonLevel)
}

func (m ConsoleUI) renderLog() string {
	return m.logView.View()
}
