package console

import (
	"fmt"
	"strings"

	"github.com/lox/parlour/internal/config"
	"github.com/lox/parlour/internal/deck"
	"github.com/lox/parlour/internal/rps"
	"github.com/lox/parlour/internal/tournament"
	"github.com/lox/parlour/internal/twentyone"
)

// historyRows caps the move history printed after each RPS round.
const historyRows = 10

// Format turns a snapshot into the text printed for it.
func Format(s Styles, snap tournament.Snapshot) string {
	switch snap.Phase {
	case tournament.PhaseTournamentStart:
		return formatTournamentStart(s, snap)
	case tournament.PhaseTournamentOver:
		return formatTournamentOver(s, snap)
	}

	switch v := snap.View.(type) {
	case rps.RoundView:
		return formatRPSRound(s, snap, v)
	case rps.TurnView:
		return s.Info.Render(v.Player + " is thinking...")
	case twentyone.TableView:
		// The opening deal renders once per card; show the table from the first turn on.
		if snap.Phase == tournament.PhaseTurn && v.Active == "" {
			return ""
		}
		return formatTable(s, snap, v)
	}
	return ""
}

func title(game string) string {
	switch game {
	case rps.GameName:
		return "ROCK PAPER SCISSORS"
	case twentyone.GameName:
		return "TWENTY-ONE"
	default:
		return strings.ToUpper(game)
	}
}

func goal(t config.Threshold) string {
	if t.IsUnlimited() {
		return "Endless tournament"
	}
	return fmt.Sprintf("First to %s win(s)!", t)
}

func formatTournamentStart(s Styles, snap tournament.Snapshot) string {
	var b strings.Builder
	b.WriteString(s.Header.Render(title(snap.Game)))
	b.WriteString("\n")
	b.WriteString(goal(snap.Threshold))
	b.WriteString("\n")
	b.WriteString(scoreboard(s, snap.Standings))
	return b.String()
}

func formatTournamentOver(s Styles, snap tournament.Snapshot) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(scoreboard(s, snap.Standings))
	b.WriteString("\n")
	if snap.Winner == "" {
		b.WriteString(s.Warning.Render("The tournament ended without a winner."))
	} else {
		b.WriteString(s.Success.Render(snap.Winner + " wins the tournament!"))
	}
	return b.String()
}

func scoreboard(s Styles, standings []tournament.Standing) string {
	parts := make([]string, len(standings))
	for i, st := range standings {
		parts[i] = fmt.Sprintf("%s: %s", st.ID, s.Score.Render(fmt.Sprint(st.Score)))
	}
	line := strings.Join(parts, "   ")
	rule := strings.Repeat("-", max(len(line)/2, 10))
	return rule + "\n" + line + "\n" + rule
}

func formatRPSRound(s Styles, snap tournament.Snapshot, v rps.RoundView) string {
	if !v.Resolved {
		if snap.Round != 1 || v.Rules == nil {
			return s.Info.Render(fmt.Sprintf("Round %d", snap.Round))
		}
		return s.Info.Render(fmt.Sprintf("Round %d", snap.Round)) + "\n" + formatRules(s, v.Rules)
	}

	var b strings.Builder
	r := v.Result
	fmt.Fprintf(&b, "%s chose %s\n", player(s, v, r.A.ID), s.Move.Render(strings.ToUpper(r.A.Move.String())))
	fmt.Fprintf(&b, "%s chose %s\n", player(s, v, r.B.ID), s.Move.Render(strings.ToUpper(r.B.Move.String())))
	if winner, ok := r.Winner(); ok {
		b.WriteString(s.Success.Render(winner + " wins the round!"))
	} else {
		b.WriteString(s.Warning.Render("It's a tie!"))
	}
	b.WriteString("\n\nSCORE  ")
	b.WriteString(goal(snap.Threshold))
	b.WriteString("\n")
	b.WriteString(scoreboard(s, snap.Standings))
	b.WriteString("\n")
	b.WriteString(formatHistory(s, v))
	return b.String()
}

func player(s Styles, v rps.RoundView, id string) string {
	for i, p := range v.Players {
		if p == id {
			return s.Players[i].Render(id)
		}
	}
	return id
}

func formatRules(s Styles, rules *rps.Rules) string {
	var b strings.Builder
	b.WriteString("RULES\n")
	for _, m := range rules.Moves() {
		beaten := make([]string, 0)
		for _, d := range rules.Defeats(m) {
			beaten = append(beaten, d.String())
		}
		fmt.Fprintf(&b, "  %s beats %s\n", s.Move.Render(strings.ToUpper(m.String())), strings.Join(beaten, " and "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatHistory(s Styles, v rps.RoundView) string {
	var b strings.Builder
	b.WriteString("MOVE HISTORY (newest first)\n")
	fmt.Fprintf(&b, "  %-12s %-12s\n", v.Players[0], v.Players[1])
	for i, r := range v.History {
		if i == historyRows {
			fmt.Fprintf(&b, "  %s\n", s.Info.Render(fmt.Sprintf("... %d more", len(v.History)-historyRows)))
			break
		}
		a, _ := r.MoveOf(v.Players[0])
		c, _ := r.MoveOf(v.Players[1])
		fmt.Fprintf(&b, "  %-12s %-12s\n", a, c)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatTable(s Styles, snap tournament.Snapshot, v twentyone.TableView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hand Value Target: %d     %s\n", v.HandLimit, goal(snap.Threshold))
	b.WriteString(scoreboard(s, snap.Standings))
	b.WriteString("\n")

	width := 0
	for _, seat := range v.Seats {
		width = max(width, len(seat.ID))
	}
	for _, seat := range v.Seats {
		marker := "  "
		if seat.ID == v.Active {
			marker = s.Active.Render("> ")
		}
		fmt.Fprintf(&b, "%s%-*s  %-6s %s\n", marker, width, seat.ID, seatValue(s, seat), formatCards(s, seat))
	}

	if v.Verdict != nil {
		b.WriteString("\n")
		switch v.Verdict.Kind {
		case twentyone.VerdictWinner:
			b.WriteString(s.Success.Render(v.Verdict.Winner + " has won the round!"))
		case twentyone.VerdictTie:
			b.WriteString(s.Warning.Render("It's a tie! Nobody scores."))
		case twentyone.VerdictNoWinner:
			b.WriteString(s.Warning.Render("Everybody went bust. No winner this round."))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func seatValue(s Styles, seat twentyone.SeatView) string {
	switch {
	case seat.HiddenLast:
		return s.Hidden.Render("?")
	case seat.Bust:
		return s.Error.Render("BUST")
	case len(seat.Cards) == 0:
		return ""
	default:
		return fmt.Sprint(seat.Value)
	}
}

func formatCards(s Styles, seat twentyone.SeatView) string {
	parts := make([]string, len(seat.Cards))
	for i, c := range seat.Cards {
		if seat.HiddenLast && i == len(seat.Cards)-1 {
			parts[i] = s.Hidden.Render("???")
			continue
		}
		parts[i] = card(s, c)
	}
	return strings.Join(parts, " ")
}

func card(s Styles, c deck.Card) string {
	if c.IsRed() {
		return s.RedCard.Render(c.String())
	}
	return s.BlackCard.Render(c.String())
}
