package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"xdao.co/lumen/codec"
	"xdao.co/lumen/link"
	"xdao.co/lumen/registry"
	"xdao.co/lumen/seed"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "phrase":
		return cmdPhrase(args[1:], out, errOut)
	case "seed":
		return cmdSeed(args[1:], out, errOut)
	case "key":
		return cmdKey(args[1:], out, errOut)
	case "link":
		return cmdLink(args[1:], out, errOut)
	case "registry":
		return cmdRegistry(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "xdao-lumen: seed, registry, and content-address CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xdao-lumen phrase generate [--password <text>]")
	fmt.Fprintln(w, "  xdao-lumen phrase seed")
	fmt.Fprintln(w, "  xdao-lumen phrase check")
	fmt.Fprintln(w, "  xdao-lumen seed init [--dir <dir>] [--force]")
	fmt.Fprintln(w, "  xdao-lumen seed show [--dir <dir>]")
	fmt.Fprintln(w, "  xdao-lumen seed clear [--dir <dir>]")
	fmt.Fprintln(w, "  xdao-lumen key derive --keypair-tag <tag> --datakey-tag <tag> [--dir <dir>]")
	fmt.Fprintln(w, "  xdao-lumen link parse <link>")
	fmt.Fprintln(w, "  xdao-lumen link build --size <n> --root <64hex>")
	fmt.Fprintln(w, "  xdao-lumen registry get --portal <host> [--portal ...] --keypair-tag <tag> --datakey-tag <tag> [--dir <dir>] [--verbose]")
	fmt.Fprintln(w, "  xdao-lumen registry set --portal <host> [--portal ...] --keypair-tag <tag> --datakey-tag <tag> --revision <n> --data <text> [--dir <dir>] [--verbose]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - phrases are read from stdin; a terminal gets a no-echo prompt")
	fmt.Fprintln(w, "  - the seed store lives under --dir, $LUMEN_DIR, or ~/.lumen")
	fmt.Fprintln(w, "  - --portal may repeat; $LUMEN_PORTALS (comma separated) is the fallback")
	fmt.Fprintln(w, "  - registry get prints revision, data hex, and the resolver link")
}

// hostList is a repeatable --portal flag.
type hostList []string

func (h *hostList) String() string { return strings.Join(*h, ",") }

func (h *hostList) Set(v string) error {
	if v == "" {
		return fmt.Errorf("empty portal")
	}
	*h = append(*h, v)
	return nil
}

// resolveHosts applies the LUMEN_PORTALS fallback.
func resolveHosts(flagged hostList) []string {
	if len(flagged) > 0 {
		return flagged
	}
	env := os.Getenv("LUMEN_PORTALS")
	if env == "" {
		return nil
	}
	var hosts []string
	for _, h := range strings.Split(env, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}

// resolveDir applies the LUMEN_DIR fallback. An empty result means the
// store's own per-user default.
func resolveDir(flagged string) string {
	if flagged != "" {
		return flagged
	}
	return os.Getenv("LUMEN_DIR")
}

// readPhrase reads a seed phrase from stdin. When stdin is a terminal the
// phrase is read without echo so it stays out of scrollback.
func readPhrase(out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(out, "seed phrase: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	r := bufio.NewReader(os.Stdin)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil
	}
	return logger
}

func cmdPhrase(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: xdao-lumen phrase <generate|seed|check> ...")
		return 2
	}
	switch args[0] {
	case "generate":
		fs := flag.NewFlagSet("phrase generate", flag.ContinueOnError)
		fs.SetOutput(errOut)
		password := fs.String("password", "", "derive the phrase from a password instead of random entropy")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		phrase, err := seed.GeneratePhrase(*password)
		if err != nil {
			fmt.Fprintf(errOut, "generate phrase: %v\n", err)
			return 1
		}
		fmt.Fprintln(out, phrase)
		return 0
	case "seed":
		phrase, err := readPhrase(errOut)
		if err != nil {
			fmt.Fprintf(errOut, "read phrase: %v\n", err)
			return 1
		}
		s, err := seed.PhraseToSeed(phrase)
		if err != nil {
			fmt.Fprintf(errOut, "invalid phrase: %v\n", err)
			return 1
		}
		fmt.Fprintln(out, codec.ToHex(s[:]))
		return 0
	case "check":
		phrase, err := readPhrase(errOut)
		if err != nil {
			fmt.Fprintf(errOut, "read phrase: %v\n", err)
			return 1
		}
		if _, err := seed.PhraseToSeed(phrase); err != nil {
			fmt.Fprintf(errOut, "invalid phrase: %v\n", err)
			return 1
		}
		fmt.Fprintln(out, "ok")
		return 0
	default:
		fmt.Fprintf(errOut, "unknown phrase subcommand: %s\n", args[0])
		return 2
	}
}

func cmdSeed(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: xdao-lumen seed <init|show|clear> ...")
		return 2
	}
	switch args[0] {
	case "init":
		fs := flag.NewFlagSet("seed init", flag.ContinueOnError)
		fs.SetOutput(errOut)
		dir := fs.String("dir", "", "seed store directory")
		force := fs.Bool("force", false, "overwrite an existing stored seed")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		phrase, err := readPhrase(errOut)
		if err != nil {
			fmt.Fprintf(errOut, "read phrase: %v\n", err)
			return 1
		}
		s, err := seed.PhraseToSeed(phrase)
		if err != nil {
			fmt.Fprintf(errOut, "invalid phrase: %v\n", err)
			return 1
		}
		st, err := seed.OpenStore(resolveDir(*dir))
		if err != nil {
			fmt.Fprintf(errOut, "open store: %v\n", err)
			return 1
		}
		if err := st.Save(s, *force); err != nil {
			fmt.Fprintf(errOut, "save seed: %v\n", err)
			return 1
		}
		fmt.Fprintln(out, "seed stored")
		return 0
	case "show":
		fs := flag.NewFlagSet("seed show", flag.ContinueOnError)
		fs.SetOutput(errOut)
		dir := fs.String("dir", "", "seed store directory")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		s, code := loadSeed(resolveDir(*dir), errOut)
		if code != 0 {
			return code
		}
		fmt.Fprintln(out, codec.ToHex(s[:]))
		return 0
	case "clear":
		fs := flag.NewFlagSet("seed clear", flag.ContinueOnError)
		fs.SetOutput(errOut)
		dir := fs.String("dir", "", "seed store directory")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		st, err := seed.OpenStore(resolveDir(*dir))
		if err != nil {
			fmt.Fprintf(errOut, "open store: %v\n", err)
			return 1
		}
		if err := st.Clear(); err != nil {
			fmt.Fprintf(errOut, "clear seed: %v\n", err)
			return 1
		}
		fmt.Fprintln(out, "seed cleared")
		return 0
	default:
		fmt.Fprintf(errOut, "unknown seed subcommand: %s\n", args[0])
		return 2
	}
}

func loadSeed(dir string, errOut io.Writer) (seed.Seed, int) {
	st, err := seed.OpenStore(dir)
	if err != nil {
		fmt.Fprintf(errOut, "open store: %v\n", err)
		return seed.Seed{}, 1
	}
	s, err := st.Load()
	if err != nil {
		if seed.IsNotAuthenticated(err) {
			fmt.Fprintln(errOut, "no stored seed; run: xdao-lumen seed init")
		} else {
			fmt.Fprintf(errOut, "load seed: %v\n", err)
		}
		return seed.Seed{}, 1
	}
	return s, 0
}

// deriveKeys loads the stored seed and derives the registry keys for a tag
// pair. Shared by key derive and the registry commands.
func deriveKeys(dir, keypairTag, datakeyTag string, errOut io.Writer) (registry.Keys, int) {
	if keypairTag == "" || datakeyTag == "" {
		fmt.Fprintln(errOut, "--keypair-tag and --datakey-tag are required")
		return registry.Keys{}, 2
	}
	s, code := loadSeed(dir, errOut)
	if code != 0 {
		return registry.Keys{}, code
	}
	keys, err := registry.TaggedKeys(s[:], keypairTag, datakeyTag)
	if err != nil {
		fmt.Fprintf(errOut, "derive keys: %v\n", err)
		return registry.Keys{}, 1
	}
	return keys, 0
}

func cmdKey(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 || args[0] != "derive" {
		fmt.Fprintln(errOut, "usage: xdao-lumen key derive --keypair-tag <tag> --datakey-tag <tag> [--dir <dir>]")
		return 2
	}
	fs := flag.NewFlagSet("key derive", flag.ContinueOnError)
	fs.SetOutput(errOut)
	keypairTag := fs.String("keypair-tag", "", "keypair derivation tag")
	datakeyTag := fs.String("datakey-tag", "", "datakey derivation tag")
	dir := fs.String("dir", "", "seed store directory")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	keys, code := deriveKeys(resolveDir(*dir), *keypairTag, *datakeyTag, errOut)
	if code != 0 {
		return code
	}
	entryID, err := registry.EntryID(keys.PublicKey, keys.Datakey[:])
	if err != nil {
		fmt.Fprintf(errOut, "entry id: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "publickey: ed25519:%s\n", codec.ToHex(keys.PublicKey))
	fmt.Fprintf(out, "datakey:   %s\n", codec.ToHex(keys.Datakey[:]))
	fmt.Fprintf(out, "entry id:  %s\n", codec.ToHex(entryID[:]))
	fmt.Fprintf(out, "resolver:  %s\n", registry.EntryIDToAddress(entryID))
	return 0
}

func cmdLink(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: xdao-lumen link <parse|build> ...")
		return 2
	}
	switch args[0] {
	case "parse":
		fs := flag.NewFlagSet("link parse", flag.ContinueOnError)
		fs.SetOutput(errOut)
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if fs.NArg() != 1 {
			fmt.Fprintln(errOut, "usage: xdao-lumen link parse <link>")
			return 2
		}
		l, err := link.FromString(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(errOut, "invalid link: %v\n", err)
			return 1
		}
		version, err := l.Version()
		if err != nil {
			fmt.Fprintf(errOut, "invalid link: %v\n", err)
			return 1
		}
		target := l.Target()
		fmt.Fprintf(out, "version: %d\n", version)
		fmt.Fprintf(out, "target:  %s\n", codec.ToHex(target[:]))
		if version == 1 {
			offset, fetchSize, err := l.OffsetAndFetchSize()
			if err != nil {
				fmt.Fprintf(errOut, "invalid link: %v\n", err)
				return 1
			}
			fmt.Fprintf(out, "offset:  %d\n", offset)
			fmt.Fprintf(out, "fetch:   %d\n", fetchSize)
		}
		return 0
	case "build":
		fs := flag.NewFlagSet("link build", flag.ContinueOnError)
		fs.SetOutput(errOut)
		size := fs.Uint64("size", 0, "covered data size in bytes")
		rootHex := fs.String("root", "", "sector Merkle root, 64 hex chars")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		raw, err := codec.FromHex(*rootHex)
		if err != nil || len(raw) != link.TargetSize {
			fmt.Fprintln(errOut, "--root must be 32 bytes of hex")
			return 2
		}
		var root [link.TargetSize]byte
		copy(root[:], raw)
		l, err := link.NewV1(root, *size)
		if err != nil {
			fmt.Fprintf(errOut, "build link: %v\n", err)
			return 1
		}
		fmt.Fprintln(out, l)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown link subcommand: %s\n", args[0])
		return 2
	}
}

func cmdRegistry(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: xdao-lumen registry <get|set> ...")
		return 2
	}
	switch args[0] {
	case "get":
		fs := flag.NewFlagSet("registry get", flag.ContinueOnError)
		fs.SetOutput(errOut)
		var portals hostList
		fs.Var(&portals, "portal", "portal host, repeatable")
		keypairTag := fs.String("keypair-tag", "", "keypair derivation tag")
		datakeyTag := fs.String("datakey-tag", "", "datakey derivation tag")
		dir := fs.String("dir", "", "seed store directory")
		verbose := fs.Bool("verbose", false, "log per-host fetch diagnostics")
		timeout := fs.Duration("timeout", 30*time.Second, "overall deadline")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		keys, code := deriveKeys(resolveDir(*dir), *keypairTag, *datakeyTag, errOut)
		if code != 0 {
			return code
		}
		hosts := resolveHosts(portals)
		if len(hosts) == 0 {
			fmt.Fprintln(errOut, "no portals: pass --portal or set LUMEN_PORTALS")
			return 2
		}

		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()
		client := &registry.Client{Hosts: hosts, Logger: newLogger(*verbose)}
		entry, res, err := client.Read(ctx, keys.PublicKey, keys.Datakey)
		if err != nil {
			fmt.Fprintf(errOut, "registry get: %v\n", err)
			if res != nil && res.Response != nil {
				fmt.Fprintf(errOut, "last response: %s %d\n", res.Response.Host, res.Response.StatusCode)
			}
			return 1
		}
		entryID, idErr := registry.EntryID(keys.PublicKey, keys.Datakey[:])
		fmt.Fprintf(out, "host:     %s\n", res.Host)
		fmt.Fprintf(out, "revision: %d\n", entry.Revision)
		fmt.Fprintf(out, "data:     %s\n", codec.ToHex(entry.Data))
		if idErr == nil {
			fmt.Fprintf(out, "resolver: %s\n", registry.EntryIDToAddress(entryID))
		}
		return 0
	case "set":
		fs := flag.NewFlagSet("registry set", flag.ContinueOnError)
		fs.SetOutput(errOut)
		var portals hostList
		fs.Var(&portals, "portal", "portal host, repeatable")
		keypairTag := fs.String("keypair-tag", "", "keypair derivation tag")
		datakeyTag := fs.String("datakey-tag", "", "datakey derivation tag")
		dir := fs.String("dir", "", "seed store directory")
		revision := fs.Uint64("revision", 0, "revision number for the new entry")
		data := fs.String("data", "", "entry payload, UTF-8 text")
		dataHex := fs.String("data-hex", "", "entry payload, hex (overrides --data)")
		verbose := fs.Bool("verbose", false, "log per-host fetch diagnostics")
		timeout := fs.Duration("timeout", 30*time.Second, "overall deadline")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		payload := []byte(*data)
		if *dataHex != "" {
			raw, err := codec.FromHex(*dataHex)
			if err != nil {
				fmt.Fprintf(errOut, "bad --data-hex: %v\n", err)
				return 2
			}
			payload = raw
		}

		keys, code := deriveKeys(resolveDir(*dir), *keypairTag, *datakeyTag, errOut)
		if code != 0 {
			return code
		}
		hosts := resolveHosts(portals)
		if len(hosts) == 0 {
			fmt.Fprintln(errOut, "no portals: pass --portal or set LUMEN_PORTALS")
			return 2
		}

		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()
		client := &registry.Client{Hosts: hosts, Logger: newLogger(*verbose)}
		res, err := client.Write(ctx, keys, payload, *revision)
		if err != nil {
			fmt.Fprintf(errOut, "registry set: %v\n", err)
			return 1
		}
		fmt.Fprintf(out, "accepted by %s\n", res.Host)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown registry subcommand: %s\n", args[0])
		return 2
	}
}
