// Command guildctl is the reference console adapter: a REPL that reads one
// verb per line from stdin, submits the matching command to a
// session.Session, and prints the events each one produces.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"guildhall/adapter/export"
	"guildhall/adapter/session"
	"guildhall/config"
	"guildhall/core/command"
	"guildhall/core/types"
)

func main() {
	seed := uint32(1)
	if len(os.Args) > 1 {
		if parsed, err := strconv.ParseUint(os.Args[1], 10, 32); err == nil {
			seed = uint32(parsed)
		}
	}

	constantsPath := "guildhall.toml"
	if len(os.Args) > 2 {
		constantsPath = os.Args[2]
	}
	constants, err := config.Load(constantsPath)
	if err != nil {
		fmt.Printf("failed to load balance constants from %s: %v\n", constantsPath, err)
		os.Exit(1)
	}

	sess, err := session.NewWithConstants(seed, constants)
	if err != nil {
		fmt.Printf("failed to construct engine: %v\n", err)
		os.Exit(1)
	}
	var nextCmdID uint64 = 1

	fmt.Println("guildctl — type 'help' for the command list, 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		verb := fields[0]
		args := fields[1:]

		if verb == "quit" {
			fmt.Println("bye.")
			os.Exit(0)
		}
		if verb == "help" {
			printUsage()
			continue
		}
		if verb == "status" {
			printStatus(sess)
			continue
		}
		if verb == "list" {
			handleList(sess, args)
			continue
		}
		if verb == "auto" {
			n := 1
			if len(args) > 0 {
				if parsed, err := strconv.Atoi(args[0]); err == nil && parsed > 0 {
					n = parsed
				}
			}
			for i := 0; i < n; i++ {
				requestID, events := sess.Apply(command.Command{Kind: command.AdvanceDay, CmdID: nextCmdID})
				nextCmdID++
				printEvents(requestID, events)
			}
			continue
		}

		cmd, ok := buildCommand(verb, args, &nextCmdID)
		if !ok {
			fmt.Printf("unknown or malformed command: %s\n", line)
			continue
		}
		requestID, events := sess.Apply(cmd)
		printEvents(requestID, events)
	}
}

func printUsage() {
	fmt.Println(`commands:
  help
  status
  list inbox|board|active|returns
  day | advance
  post <inbox_id> <fee> <GUILD|HERO|SPLIT>
  create <title> <rank> <difficulty> <reward> [salvage]
  update <contract_id> [fee=N] [salvage=X]
  cancel <contract_id>
  close <active_id>
  sell [amount]
  tax pay <amount>
  auto <n>
  quit`)
}

func printStatus(sess *session.Session) {
	rep := export.BuildReport(sess.State())
	fmt.Printf("day %d | guild %s (rep %d) | stability %d | money %d (reserved %d) | trophies %d\n",
		rep.Day, rep.GuildRank, rep.Reputation, rep.Stability, rep.MoneyCopper, rep.Reserved, rep.Trophies)
	fmt.Printf("board: %d open, %d in progress | returns awaiting close: %d | roster: %d\n",
		rep.OpenBoard, rep.ActiveWIP, rep.ReturnsReady, rep.RosterSize)
	fmt.Printf("tax due day %d, amount due %d\n", rep.TaxDueDay, rep.TaxAmountDue)
}

func handleList(sess *session.Session, args []string) {
	if len(args) == 0 {
		fmt.Println("usage: list inbox|board|active|returns")
		return
	}
	s := sess.State()
	switch args[0] {
	case "inbox":
		for _, d := range s.Contracts.Inbox {
			fmt.Printf("draft#%d %q rank=%s fee=%d salvage=%s\n", d.ID, d.Title, d.RankSuggested, d.FeeOffered, d.Salvage)
		}
	case "board":
		for _, b := range s.Contracts.Board {
			fmt.Printf("board#%d %q rank=%s fee=%d status=%s\n", b.ID, b.Title, b.Rank, b.Fee, b.Status)
		}
	case "active":
		for _, a := range s.Contracts.Active {
			fmt.Printf("active#%d board#%d status=%s days_remaining=%d heroes=%v\n", a.ID, a.BoardContractID, a.Status, a.DaysRemaining, a.HeroIDs)
		}
	case "returns":
		for _, r := range s.Contracts.Returns {
			fmt.Printf("return for active#%d outcome=%s requires_close=%v\n", r.ActiveContractID, r.Outcome, r.RequiresPlayerClose)
		}
	default:
		fmt.Println("usage: list inbox|board|active|returns")
	}
}

func printEvents(requestID string, events []types.EventRecord) {
	fmt.Printf("request %s produced %d event(s):\n", requestID, len(events))
	for _, e := range events {
		fmt.Printf("  [%d] %s %v\n", e.Seq, e.Type, e.Attributes)
	}
}

func buildCommand(verb string, args []string, nextCmdID *uint64) (command.Command, bool) {
	id := *nextCmdID
	cmd := command.Command{CmdID: id}
	ok := false

	switch verb {
	case "day", "advance":
		cmd.Kind = command.AdvanceDay
		ok = true
	case "post":
		if len(args) != 3 {
			return command.Command{}, false
		}
		inboxID, err1 := strconv.ParseInt(args[0], 10, 64)
		fee, err2 := strconv.ParseInt(args[1], 10, 64)
		salvage, ok3 := types.ParseSalvagePolicy(args[2])
		if err1 != nil || err2 != nil || !ok3 {
			return command.Command{}, false
		}
		cmd.Kind = command.PostContract
		cmd.InboxID = types.ContractDraftID(inboxID)
		cmd.Fee = fee
		cmd.Salvage = salvage
		ok = true
	case "create":
		if len(args) < 4 {
			return command.Command{}, false
		}
		rank, okRank := types.ParseRank(args[1])
		difficulty, err1 := strconv.Atoi(args[2])
		reward, err2 := strconv.ParseInt(args[3], 10, 64)
		if !okRank || err1 != nil || err2 != nil {
			return command.Command{}, false
		}
		cmd.Kind = command.CreateContract
		cmd.Title = args[0]
		cmd.Rank = rank
		cmd.BaseDifficulty = difficulty
		cmd.Fee = reward
		cmd.Salvage = types.SalvageGuild
		if len(args) >= 5 {
			if salvage, okSalvage := types.ParseSalvagePolicy(args[4]); okSalvage {
				cmd.Salvage = salvage
			}
		}
		ok = true
	case "update":
		if len(args) < 1 {
			return command.Command{}, false
		}
		contractID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return command.Command{}, false
		}
		cmd.Kind = command.UpdateContractTerms
		cmd.ContractID = contractID
		for _, kv := range args[1:] {
			parts := strings.SplitN(kv, "=", 2)
			if len(parts) != 2 {
				continue
			}
			switch parts[0] {
			case "fee":
				if fee, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
					cmd.Fee = fee
					cmd.HasFee = true
				}
			case "salvage":
				if salvage, okSalvage := types.ParseSalvagePolicy(parts[1]); okSalvage {
					cmd.Salvage = salvage
					cmd.HasSalvage = true
				}
			}
		}
		ok = true
	case "cancel":
		if len(args) != 1 {
			return command.Command{}, false
		}
		contractID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return command.Command{}, false
		}
		cmd.Kind = command.CancelContract
		cmd.ContractID = contractID
		ok = true
	case "close":
		if len(args) != 1 {
			return command.Command{}, false
		}
		activeID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return command.Command{}, false
		}
		cmd.Kind = command.CloseReturn
		cmd.ActiveID = types.ActiveContractID(activeID)
		ok = true
	case "sell":
		cmd.Kind = command.SellTrophies
		if len(args) > 0 {
			if amount, err := strconv.ParseInt(args[0], 10, 64); err == nil {
				cmd.Amount = amount
			}
		}
		ok = true
	case "tax":
		if len(args) != 2 || args[0] != "pay" {
			return command.Command{}, false
		}
		amount, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return command.Command{}, false
		}
		cmd.Kind = command.PayTax
		cmd.Amount = amount
		ok = true
	default:
		return command.Command{}, false
	}

	if ok {
		*nextCmdID++
	}
	return cmd, ok
}
