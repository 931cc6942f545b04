package command

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/adiazny/birthday-lambda/internal/pkg/birthday"
)

const defaultSlashCommand = "/birthdays"

func section(text string) slack.Block {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}

func listMessage(birthdays []birthday.Birthday) []slack.Block {
	if len(birthdays) == 0 {
		return []slack.Block{
			section("No birthdays on record yet. Be the first to add one! 🎈"),
		}
	}

	return []slack.Block{
		section(fmt.Sprintf("Wow, *%d* birthdays! Here they are:", len(birthdays))),
		slack.NewDividerBlock(),
		section(birthday.FormatList(birthdays)),
	}
}

func foundByNameMessage(birthdays []birthday.Birthday) []slack.Block {
	plural := ""
	if len(birthdays) > 1 {
		plural = "s"
	}

	return []slack.Block{
		section(fmt.Sprintf("Wow, *%d* birthday%s found for your search! 🔎", len(birthdays), plural)),
		slack.NewDividerBlock(),
		section(birthday.FormatList(birthdays)),
	}
}

func notFoundByNameMessage(name string) []slack.Block {
	return []slack.Block{
		section(fmt.Sprintf("Unfortunately, no birthday for '%s' was found! :cry: Check the name maybe? 🧐", name)),
	}
}

func foundByDateMessage(birthdays []birthday.Birthday, day string) []slack.Block {
	names := make([]string, 0, len(birthdays))
	for _, b := range birthdays {
		names = append(names, b.Person)
	}

	verb := "have"
	if len(names) == 1 {
		verb = "has"
	}

	return []slack.Block{
		section(fmt.Sprintf("Yay, *%s* %s their birthday on %s! Congrats! 🎉", strings.Join(names, " and "), verb, day)),
	}
}

func notFoundByDateMessage(day string) []slack.Block {
	return []slack.Block{
		section(fmt.Sprintf("Unfortunately, nobody we know will celebrate their birthday on %s. :cry: Want to try another date? 📅", day)),
	}
}

func addedMessage(b birthday.Birthday) []slack.Block {
	return []slack.Block{
		section(fmt.Sprintf("The birthday of %s (%s) was successfully added.", b.Person, b.Day())),
	}
}

func notUnderstoodMessage(err error) []slack.Block {
	return []slack.Block{
		section(fmt.Sprintf("Argh, I didn't get that! 🤔 Please use the syntax '[Name] on [Date]'. Thanks! 🙏 (For what it's worth, here is what went wrong: `%v`)", err)),
	}
}

func helpMessage(command string) []slack.Block {
	if command == "" {
		command = defaultSlashCommand
	}

	return []slack.Block{
		section(fmt.Sprintf("`%s list` will show you a list of all birthdays we have on record. 📜", command)),
		slack.NewDividerBlock(),
		section(fmt.Sprintf("`%s find [a name]` will return the date for that person's birthday, if there is one. 🔎", command)),
		section(fmt.Sprintf("`%s find [a date]` will try to find people for that date. For best results use this format '1 January'. 📅", command)),
		slack.NewDividerBlock(),
		section(fmt.Sprintf("`%s add Le P'tit Jesus on 25 Dec` will add that name for the given date. For best results use this format '1 January'. ✍️", command)),
		slack.NewDividerBlock(),
		section(fmt.Sprintf("`%s` or `%s help` will display this message. Very self-referential and _meta_. 🤓", command, command)),
	}
}

func pongMessage() []slack.Block {
	return []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.PlainTextType, "PONG", false, false), nil, nil),
	}
}
