package lap

const bashCompletionTemplate = `# bash completion for %s

_%s_completions()
{
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    opts="%s"

    COMPREPLY=($(compgen -W "${opts}" -- "${cur}"))
}

complete -o default -F _%s_completions %s
`
