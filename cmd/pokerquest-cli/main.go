package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"pokerquest/internal/config"
	"pokerquest/internal/constants"
	"pokerquest/internal/engine"
	"pokerquest/internal/game"
	"pokerquest/internal/poker"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// Local interactive client: plays one stage directly against the engine,
// with no server or database in between.
func main() {
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		pterm.Error.Printfln("cannot load config %s: %v", configPath, err)
		os.Exit(1)
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Poker", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Quest", pterm.FgDarkGray.ToStyle()),
	).Render()

	names := make([]string, 0, len(cfg.Stages))
	for _, s := range cfg.Stages {
		names = append(names, s.Name)
	}
	chosen, _ := pterm.DefaultInteractiveSelect.WithOptions(names).Show("Choose a stage")
	stage, _ := cfg.StageByName(chosen)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	player := game.NewCombatant("you", stage.PlayerHitPoints, stage.PlayerAttack)
	for _, cond := range stage.PlayerConditions {
		engine.ApplyCondition(rng, &player, cond)
	}
	boss := game.NewCombatant(stage.BossName, stage.BossHitPoints, stage.BossAttack)

	deck := poker.NewDeck(rng, cfg.WildcardChance)
	hand := deck.Draw(cfg.HandSize, nil)
	eng := engine.New(rng, stage.Rules, &player, &boss)

	for {
		printState(&player, &boss)
		selection := pickCards(hand, cfg.MaxAttackCards)
		if len(selection) == 0 {
			pterm.Warning.Println("nothing selected, swapping your whole hand instead")
			hand = deck.Draw(cfg.HandSize, nil)
		} else {
			selected := make([]game.Card, 0, len(selection))
			for _, i := range selection {
				selected = append(selected, hand[i])
			}
			res := eng.ResolvePlayerAttack(selected)
			playActions(append([]engine.Action{engine.NewImpactAction(res)}, eng.ApplyPlayerAttack(res)...), &player, &boss)
			hand = removeAt(hand, selection)
		}

		if eng.CheckStatus() == engine.Ongoing {
			imp := eng.ResolveBossAttack()
			playActions(eng.ApplyBossAttack(imp), &player, &boss)
		}
		if eng.CheckStatus() == engine.Ongoing {
			playActions(eng.ProcessEndTurn(), &player, &boss)
		}

		switch eng.CheckStatus() {
		case engine.PlayerWon:
			pterm.Success.Printfln("%s is defeated. You win!", boss.Name)
			return
		case engine.PlayerLost:
			pterm.Error.Println("You were defeated.")
			return
		}
		hand = append(hand, deck.Draw(cfg.HandSize-len(hand), hand)...)
	}
}

func printState(player, boss *game.Combatant) {
	pterm.Println()
	pterm.Info.Printfln("%s: %d/%d HP %v", boss.Name, boss.HP, boss.MaxHP, boss.Conditions.Names())
	pterm.Info.Printfln("%s: %d/%d HP %v", player.Name, player.HP, player.MaxHP, player.Conditions.Names())
}

func pickCards(hand []game.Card, max int) []int {
	options := make([]string, len(hand))
	for i, c := range hand {
		options[i] = strconv.Itoa(i) + ": " + c.String()
	}
	picked, _ := pterm.DefaultInteractiveMultiselect.WithOptions(options).
		Show(fmt.Sprintf("Pick up to %d cards to attack with (none = swap hand)", max))
	out := make([]int, 0, len(picked))
	for _, p := range picked {
		for i, o := range options {
			if o == p {
				out = append(out, i)
			}
		}
	}
	if len(out) > max {
		out = out[:max]
	}
	return out
}

func playActions(actions []engine.Action, player, boss *game.Combatant) {
	for _, a := range actions {
		target := string(a.Target)
		switch a.Type {
		case engine.ActionImpact:
			crit := ""
			if a.Critical {
				crit = " CRITICAL!"
			}
			if a.Banned {
				pterm.Warning.Printfln("%s (BANNED): no damage", a.Category)
			} else {
				pterm.Println(pterm.Yellow(fmt.Sprintf("%s for %d damage%s", a.Category, a.Amount, crit)))
			}
		case engine.ActionDamage:
			pterm.Printfln("%s takes %d damage", target, a.Amount)
		case engine.ActionHeal:
			pterm.Printfln("%s recovers %d HP", target, a.Amount)
		case engine.ActionAvoided:
			pterm.Success.Println("attack avoided!")
		case engine.ActionConditionApplied:
			pterm.Warning.Printfln("%s is now %s", target, a.Condition)
		case engine.ActionSkipped:
			pterm.Printfln("%s skips the turn", target)
		case engine.ActionStatGrowth:
			pterm.Warning.Printfln("%s grows stronger (attack %d)", target, a.Amount)
		}
		time.Sleep(time.Duration(a.TimingHint * float64(time.Second)))
	}
}

func removeAt(hand []game.Card, indexes []int) []game.Card {
	drop := map[int]bool{}
	for _, i := range indexes {
		drop[i] = true
	}
	out := hand[:0]
	for i, c := range hand {
		if !drop[i] {
			out = append(out, c)
		}
	}
	return out
}
