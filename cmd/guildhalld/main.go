// Command guildhalld runs the long-lived gateway daemon: the engine behind
// the REST surface, with rotating JSON logs, Prometheus metrics, and an
// optional sqlite journal of every event the simulation emits.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"guildhall/adapter/session"
	"guildhall/config"
	"guildhall/core/events"
	"guildhall/core/types"
	gatewayhttp "guildhall/gateway/http"
	"guildhall/observability/logging"
	"guildhall/storage/journal"
)

func main() {
	var (
		addr          = flag.String("addr", ":8420", "listen address for the gateway")
		seed          = flag.Uint("seed", 1, "rng seed for a fresh simulation")
		constantsPath = flag.String("config", "guildhall.toml", "balance constants file")
		journalPath   = flag.String("journal", "", "sqlite journal path (empty disables persistence)")
		logPath       = flag.String("log", "guildhalld.log", "rotating log file path")
		cmdRate       = flag.Float64("command-rate", 5, "commands per second per client")
		cmdBurst      = flag.Int("command-burst", 10, "command burst per client")
	)
	flag.Parse()

	logger := logging.SetupRotatingFile("guildhalld", os.Getenv("GUILDHALL_ENV"), *logPath)

	constants, err := config.Load(*constantsPath)
	if err != nil {
		logger.Error("load balance constants", "error", err.Error())
		os.Exit(1)
	}

	sess, err := session.NewWithConstants(uint32(*seed), constants)
	if err != nil {
		logger.Error("construct engine", "error", err.Error())
		os.Exit(1)
	}

	var store *journal.Store
	if *journalPath != "" {
		store, err = journal.Open(*journalPath)
		if err != nil {
			logger.Error("open journal", "error", err.Error())
			os.Exit(1)
		}
		defer store.Close()
	}

	router := gatewayhttp.NewRouter(gatewayhttp.Config{
		Session:     sess,
		RateLimiter: gatewayhttp.NewRateLimiter(),
		CommandRate: gatewayhttp.RateLimit{RatePerSecond: *cmdRate, Burst: *cmdBurst},
		OnEvents:    persistEvents(sess, store, logger.Error),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	logger.Info("gateway listening", "component", "gateway", "addr", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		logger.Error("gateway stopped", "error", err.Error())
		os.Exit(1)
	}
}

// persistEvents appends every batch of emitted events to the journal and
// records a snapshot row whenever a day closes. A nil store disables
// persistence without disabling the gateway.
func persistEvents(sess *session.Session, store *journal.Store, logErr func(string, ...any)) func([]types.EventRecord) {
	if store == nil {
		return nil
	}
	return func(evts []types.EventRecord) {
		if err := store.AppendEvents(evts); err != nil {
			logErr("journal append", "error", err.Error())
			return
		}
		for _, e := range evts {
			if e.Type != events.TypeDayEnded {
				continue
			}
			s := sess.State()
			rec := journal.SnapshotRecord{
				Day:         s.Meta.DayIndex,
				GuildRank:   s.Guild.Rank.String(),
				Reputation:  s.Guild.Reputation,
				Stability:   s.Region.Stability,
				MoneyCopper: int64(s.Economy.MoneyCopper),
				Reserved:    int64(s.Economy.ReservedCopper),
				Trophies:    s.Economy.TrophiesStock,
			}
			if err := store.AppendSnapshot(rec); err != nil {
				logErr("journal snapshot", "error", err.Error())
			}
		}
	}
}
