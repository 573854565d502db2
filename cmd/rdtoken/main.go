package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/saylorsolutions/rdscreen/cmd/internal"
	"github.com/saylorsolutions/rdscreen/pkg/screen"
	"github.com/saylorsolutions/rdscreen/pkg/serverid"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	var (
		helpFlag        bool
		versionFlag     bool
		interactiveFlag bool
		secureFlag      bool
		keyHex          string
		password        string
	)
	flags := flag.NewFlagSet("rdtoken", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&versionFlag, "version", false, "Prints the rdtoken version.")
	flags.BoolVarP(&interactiveFlag, "interactive", "i", false, "Opens an interactive form for encoding and decoding tokens, keeping them out of shell history.")
	flags.BoolVar(&secureFlag, "secure", false, "Makes keygen read the OS entropy pool instead of the legacy session-key generator.")
	flags.StringVarP(&keyHex, "key", "k", "", "Active key as 32 hex characters. Without --key or --password the built-in default key is used.")
	flags.StringVarP(&password, "password", "p", "", "Derives the active key from a password with the legacy derivation.")
	flags.Usage = func() {
		fmt.Printf(`
rdtoken encodes a network endpoint as a Server ID token and back. Tokens are
short alphanumeric strings (like XXXX-XXXX-XXXX-X) that users can read over
the phone or paste without exposing the real address.

USAGE:  rdtoken [FLAGS] COMMAND [ARGS]

COMMANDS:
    encode IP PORT    Prints the token for an IPv4 endpoint.
    decode TOKEN      Prints "IP PORT" recovered from a token.
    check TOKEN       Validates token format only; exits 1 on bad format.
    keygen            Prints a fresh 16-byte key as hex. See --secure.

FLAGS:
%s
SECURITY:
    The screening behind tokens is obfuscation, not encryption. It keeps
endpoints out of casual sight, and the checksum catches typos, but anyone
holding the key material can reverse it. Do not rely on tokens to keep an
address secret from a determined party.
`, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		internal.Print("rdtoken %s", version)
		return
	}
	if keyHex != "" && password != "" {
		internal.Fatal("--key and --password are mutually exclusive")
	}

	chain := screen.NewKeychain()
	switch {
	case keyHex != "":
		key, err := hex.DecodeString(keyHex)
		if err != nil {
			internal.Fatal("decoding --key: must be hex characters only")
		}
		if err := chain.Init(key); err != nil {
			internal.Fatal("installing key: %v", err)
		}
	case password != "":
		if err := chain.Init(screen.DeriveKey(password)); err != nil {
			internal.Fatal("installing derived key: %v", err)
		}
	}

	if interactiveFlag {
		scr, err := chain.Screen()
		if err != nil {
			internal.Fatal("preparing screen: %v", err)
		}
		if err := runInteractive(scr); err != nil {
			internal.Fatal("interactive session: %v", err)
		}
		return
	}

	switch flags.Arg(0) {
	case "":
		flags.Usage()
		internal.Fatal("missing required COMMAND argument")
	case "encode":
		runEncode(chain, flags.Arg(1), flags.Arg(2))
	case "decode":
		runDecode(chain, flags.Arg(1))
	case "check":
		runCheck(flags.Arg(1))
	case "keygen":
		runKeygen(chain, secureFlag)
	default:
		flags.Usage()
		internal.Fatal("unknown command %q", flags.Arg(0))
	}
}

func runEncode(chain *screen.Keychain, ip, portArg string) {
	if ip == "" || portArg == "" {
		internal.Fatal("encode requires IP and PORT arguments")
	}
	port, err := strconv.ParseUint(portArg, 10, 16)
	if err != nil {
		internal.Fatal("PORT must be a number in 0-65535, got %q", portArg)
	}
	scr, err := chain.Screen()
	if err != nil {
		internal.Fatal("preparing screen: %v", err)
	}
	token, err := serverid.Encode(scr, ip, uint16(port))
	if err != nil {
		internal.Fatal("encoding %s:%d: %v", ip, port, err)
	}
	internal.Print(token)
}

func runDecode(chain *screen.Keychain, token string) {
	if token == "" {
		internal.Fatal("decode requires a TOKEN argument")
	}
	scr, err := chain.Screen()
	if err != nil {
		internal.Fatal("preparing screen: %v", err)
	}
	ip, port, err := serverid.Decode(scr, token)
	if err != nil {
		internal.Fatal("decoding %q: %v", token, err)
	}
	internal.Print("%s %d", ip, port)
}

func runCheck(token string) {
	if token == "" {
		internal.Fatal("check requires a TOKEN argument")
	}
	if !serverid.ValidateFormat(token) {
		internal.Fatal("%q is not a well-formed token", token)
	}
	internal.Print("ok")
}

func runKeygen(chain *screen.Keychain, secure bool) {
	var (
		key []byte
		err error
	)
	if secure {
		key, err = screen.SecureKey()
		if err != nil {
			internal.Fatal("generating key: %v", err)
		}
	} else {
		key = chain.SessionKey()
	}
	internal.Print(hex.EncodeToString(key))
}
