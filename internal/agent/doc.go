// Package agent is used to send munin-node values to statsd.
// Every run makes one sweep over all munin plugins.
// To start, use:
//
//	 cfg, err := agent.NewConfig(os.Args[1:], os.Stderr)
//	 if err != nil {
//			log.Fatalln(err)
//	 }
//	 logger, err := agent.NewLogger(cfg.Verbose)
//	 if err != nil {
//			log.Fatalln("create logger error:", err)
//	 }
//	 stats, err := agent.NewAgent(cfg, logger).Run(context.Background())
package agent
