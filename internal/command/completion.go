// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/celldiff/internal/meta"
)

const bashCompletionScript = `# bash completion for celldiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_celldiff()
{
    local cur prev cmd opts
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "sheets books dirs completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --filter -f --output -o --sort -s --titles -t"
    local compare="--column-gaps --comments --no-cache --parallel -p --quick -q --row-gaps --weighted -w"

    case "$cmd" in
        sheets|books)
            opts="$common $compare"
            ;;
        dirs)
            opts="$common --all -a --max-depth"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    if [[ "$cmd" == "dirs" ]]; then
        COMPREPLY=( $(compgen -o dirnames -- "$cur") )
    else
        COMPREPLY=( $(compgen -f -X '!*.@(xlsx|xlsm|xltx|xltm|csv)' -- "$cur") $(compgen -d -- "$cur") )
    fi
    return 0
}

complete -F _celldiff celldiff
`

const zshCompletionScript = `#compdef celldiff

_celldiff() {
  local -a cmds
  cmds=(
    'sheets:compare one sheet of each workbook'
    'books:compare every sheet of two workbooks'
    'dirs:pair the entries of two directory trees'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '(-s --sort)'{-s,--sort}'[sort columns]:columns'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  local -a compare
  compare=(
  '--column-gaps[detect inserted and deleted columns]'
  '--comments[compare cell comments]'
  '--no-cache[ignore cached results]'
  '(-p --parallel)'{-p,--parallel}'[rows compared at once]:count'
  '(-q --quick)'{-q,--quick}'[match rows and columns independently]'
  '--row-gaps[detect inserted and deleted rows]'
  '(-w --weighted)'{-w,--weighted}'[weigh cells by content length]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'celldiff commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    sheets|books)
      _arguments -C \
        $common \
        $compare \
        '*:workbook:_files -g "*.(xlsx|xlsm|xltx|xltm|csv)"'
      ;;
    dirs)
      _arguments -C \
        $common \
        '(-a --all)'{-a,--all}'[include unchanged entries]' \
        '--max-depth[deepest level compared]:depth' \
        '*:directory:_directories'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:file:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _celldiff celldiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}

	shell := cmd.Args().First()
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("usage: celldiff completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "celldiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
