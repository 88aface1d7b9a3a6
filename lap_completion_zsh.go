package lap

const zshCompletionTemplate = `#compdef %s

_%s() {
    _arguments -s \
        %s
}

compdef _%s %s
`
