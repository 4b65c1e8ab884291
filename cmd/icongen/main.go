package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/icongen"
	"github.com/esimov/icongen/utils"
)

const HelpBanner = `
┬┌─┐┌─┐┌┐┌┌─┐┌─┐┌┐┌
││  │ ││││├┬┐├┤ │││
┴└─┘└─┘┘└┘└─┘└─┘┘└┘

Procedural application icon generator.
    Version: %s

`

// result holds the outcome of generating one icon.
type result struct {
	name string
	dir  string
	err  error
}

// Version indicates the current build version.
var Version string

func main() {
	log.SetFlags(0)

	names := icongen.Names(icongen.Catalog(""))
	cfg, err := parseConfig(os.Args[1:], names, os.Stderr)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Invalid configuration: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	catalog := icongen.Catalog(cfg.Font)

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ ICONGEN", utils.StatusMessage),
		utils.DecorateText("is drawing the icons...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*200, true)

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	exporter := icongen.NewExporter()
	var written []string
	var mu sync.Mutex
	exporter.Report = func(path string, size int) {
		mu.Lock()
		defer mu.Unlock()
		written = append(written, fmt.Sprintf("%s (%dx%d)", path, size, size))
	}

	now := time.Now()
	spinner.Start()

	icons := make([]icongen.Icon, 0, len(catalog))
	for _, name := range cfg.selected(names) {
		icons = append(icons, catalog[name])
	}
	ch := generate(icons, cfg.OutDir, cfg.Workers, exporter)

	var results []result
	for res := range ch {
		results = append(results, res)
	}
	spinner.StopMsg = fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ ICONGEN", utils.StatusMessage),
		utils.DecorateText("is drawing the icons... ✔", utils.DefaultMessage))
	spinner.Stop()

	failed := false
	for _, res := range results {
		if !printStatus(res) {
			failed = true
		}
	}
	if cfg.Verbose {
		for _, path := range written {
			fmt.Fprintf(os.Stderr, "\t%s\n", path)
		}
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	if failed {
		os.Exit(1)
	}
}

// generate spreads the icons over a pool of workers. Every icon is composed
// and exported by a single worker and its outcome is sent on the returned
// channel, which is closed once all the icons are done.
func generate(icons []icongen.Icon, root string, workers int, e *icongen.Exporter) <-chan result {
	jobs := make(chan icongen.Icon)
	ch := make(chan result)

	go func() {
		defer close(jobs)
		for _, icon := range icons {
			jobs <- icon
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			consumer(jobs, root, e, ch)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	return ch
}

// consumer generates the icons received on the jobs channel
// and sends the results on the res channel.
func consumer(jobs <-chan icongen.Icon, root string, e *icongen.Exporter, res chan<- result) {
	for icon := range jobs {
		res <- result{
			name: icon.Name,
			dir:  filepath.Join(root, icon.BaseDir),
			err:  icon.Generate(root, e),
		}
	}
}

// printStatus displays the outcome of an icon generation and reports whether it succeeded.
func printStatus(res result) bool {
	if res.err != nil {
		fmt.Fprintf(os.Stderr,
			utils.DecorateText("\nError generating the %s icon: %s", utils.ErrorMessage),
			res.name,
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", res.err), utils.DefaultMessage),
		)
		return false
	}
	fmt.Fprintf(os.Stderr, "\nThe %s icon has been saved into: %s %s\n",
		res.name,
		utils.DecorateText(res.dir, utils.SuccessMessage),
		utils.DefaultColor,
	)
	return true
}
