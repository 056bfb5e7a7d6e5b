package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ergochat/readline"
	"github.com/google/uuid"

	"github.com/dreamkeep/dreamkeep"
	"github.com/dreamkeep/dreamkeep/model"
	"github.com/dreamkeep/dreamkeep/store"
	"github.com/dreamkeep/dreamkeep/utils"
)

var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("append"),
	readline.PcItem("pop"),
	readline.PcItem("set"),
	readline.PcItem("pref"),
	readline.PcItem("show"),
	readline.PcItem("save"),
	readline.PcItem("load"),
	readline.PcItem("dump"),
	readline.PcItem("exit"),
	readline.PcItem("quit"),
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

var ErrBadRecordJson = errors.New("bad record JSON")

// {"description":"Dream 2","kind":"Unicorn","color":"yellow","count":2,"effects":["laserFocus","magic"]}
type recordJson struct {
	Description string   `json:"description"`
	Kind        string   `json:"kind"`
	Color       string   `json:"color"`
	Count       int      `json:"count"`
	Effects     []string `json:"effects"`
}

func parseRecord(jsn string) (r model.Record, err error) {
	var parsed recordJson
	if err = json.Unmarshal([]byte(jsn), &parsed); err != nil {
		return r, ErrBadRecordJson
	}
	kind, ok := model.KindByName(parsed.Kind)
	if !ok {
		return r, fmt.Errorf("unknown kind %q", parsed.Kind)
	}
	if parsed.Color != "" {
		color, ok := model.ColorByName(parsed.Color)
		if !ok {
			return r, fmt.Errorf("unknown color %q", parsed.Color)
		}
		switch kind.Name() {
		case "Unicorn":
			kind = model.Unicorn(color)
		case "Dragon":
			kind = model.Dragon(color)
		case "Pegasus":
			kind = model.Pegasus(color)
		}
	}
	effects := model.EffectSet{}
	for _, name := range parsed.Effects {
		e, ok := model.EffectByResourceName(name)
		if !ok {
			return r, fmt.Errorf("unknown effect %q", name)
		}
		effects = effects.With(e)
	}
	return model.Record{
		Description: parsed.Description,
		Kind:        kind,
		Effects:     effects,
		Count:       parsed.Count,
	}, nil
}

func showCollection(w io.Writer, c model.Collection) {
	_, _ = fmt.Fprintf(w, "preference: %s\n", c.Preference().Name())
	for i := 0; i < c.Len(); i++ {
		r := c.At(i)
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s(%s)\tx%d\t%s\n",
			i, r.Description, r.Kind.Name(), r.Kind.Color(), r.Count,
			strings.Join(r.Effects.Names(), ","))
	}
}

func dumpKeys(w io.Writer, st store.Store) error {
	c, err := dreamkeep.Load(st)
	if err != nil {
		return err
	}
	keys := []string{"modelInitialized", "favoriteCreatureName", "rowsQuantity"}
	for k := 0; k < c.Len(); k++ {
		keys = append(keys,
			fmt.Sprintf("description%d", k),
			fmt.Sprintf("creatureName%d", k),
			fmt.Sprintf("numberOfCreatures%d", k))
		for j := 0; j < c.At(k).Effects.Size(); j++ {
			keys = append(keys, fmt.Sprintf("DreamEffectsNamek=%dj=%d", k, j))
		}
		keys = append(keys, fmt.Sprintf("sizeOfSet%d", k))
	}
	for _, key := range keys {
		v, ok, err := st.Get(key)
		if err != nil {
			return err
		}
		if ok {
			_, _ = fmt.Fprintf(w, "%s\t%s\n", key, v.String())
		}
	}
	return nil
}

const usage = `append {"description":...,"kind":...,"color":...,"count":...,"effects":[...]}
pop
set <index> {...}
pref <kind>
show
save     (run after every single mutation)
load
dump
exit`

func main() {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "◌ ",
		HistoryFile:     "/tmp/dreamkeep.history.tmp",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	dir := "dk-" + uuid.NewString()[:8]
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	st, err := store.OpenPebble(dir)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(-1)
	}

	log := utils.NewDefaultLogger(slog.LevelInfo)
	enc := dreamkeep.NewEncoder(st, log)
	ctx := utils.WithArgs(context.Background(), "dir", dir)

	saved, err := dreamkeep.Load(st)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(-1)
	}
	current := saved

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		line = strings.TrimSpace(line)
		cmd, rest, _ := strings.Cut(line, " ")
		err = nil
		switch cmd {
		case "", "help":
			fmt.Println(usage)
		case "exit", "quit":
			ex := 0
			if err = st.Close(); err != nil {
				_, _ = fmt.Fprintln(os.Stderr, err.Error())
				ex = -1
			}
			os.Exit(ex)
		case "append":
			var r model.Record
			if r, err = parseRecord(rest); err == nil {
				current = current.Append(r)
			}
		case "pop":
			current, _, err = current.RemoveLast()
		case "set":
			ndx, jsn, _ := strings.Cut(rest, " ")
			i, convErr := strconv.Atoi(ndx)
			if convErr != nil || i < 0 || i >= current.Len() {
				err = fmt.Errorf("bad index %q", ndx)
				break
			}
			var r model.Record
			if r, err = parseRecord(jsn); err == nil {
				current = current.Replace(i, r)
			}
		case "pref":
			kind, ok := model.KindByName(strings.TrimSpace(rest))
			if !ok {
				err = fmt.Errorf("unknown kind %q", rest)
				break
			}
			current = current.WithPreference(kind)
		case "show", "list":
			showCollection(os.Stdout, current)
		case "save":
			var d dreamkeep.Diff
			if d, err = dreamkeep.Compare(saved, current); err != nil {
				// too many mutations since the last save; revert
				current = saved
				break
			}
			var written int
			if written, err = enc.Encode(ctx, d); err != nil {
				break
			}
			saved = current
			fmt.Printf("%d keys written\n", written)
		case "load":
			if saved, err = dreamkeep.Load(st); err != nil {
				break
			}
			current = saved
			showCollection(os.Stdout, current)
		case "dump":
			err = dumpKeys(os.Stdout, st)
		default:
			_, _ = fmt.Fprintf(os.Stderr, "command unknown: %s\n", cmd)
		}

		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error executing %s: %s\n", cmd, err.Error())
		}
	}
	_ = st.Close()
}
