package main

import (
	"fmt"
	"io"
)

const usageText = `
   protect-coins --unspent=<arg>

   This tool makes public funds (utxo) into private funds.

   Required:

    --unspent=<arg>       all|first|last|<txlist>
                           all    = convert all unspent outputs
                           first  = convert first unspent output
                           last   = convert last unspent output
                           txlist = one or more txid, comma separated.

   Optional:

    --fee=<amt>           fee amount.  default = 0

    --zcash-cli=<path>    path to zcash-cli.  default = './src/zcash-cli'

    --verbosity=<level>   silent|errors|summaries|results|debug
                          default = debug

    --config=<file>       YAML file with any of the settings above.
                          Settings may also be given as PROTECT_COINS_*
                          environment variables, e.g. PROTECT_COINS_ZCASH_CLI.

    --log-level=<level>   debug|info|warn|error.  default = info

    --log-format=<fmt>    console|json.  default = console

    --help                display usage information

`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
