package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/rolodex/core"
	"github.com/huangsam/rolodex/schema"
)

// register builds the command table.
func (d *Dispatcher) register() {
	d.commands = make(map[string]*command)
	add := func(name, usage, help string, run handlerFunc) {
		d.commands[name] = &command{usage: usage, help: help, run: run}
		d.order = append(d.order, name)
	}
	add("add", "Give me name and phone please.", "add <name> <phone>", d.addContact)
	add("change", "Give me name, old phone and new phone.", "change <name> <old phone> <new phone>", d.changePhone)
	add("phone", MsgEnterName, "phone <name>", d.showPhone)
	add("all", MsgInvalidCommand, "all", d.showAll)
	add("add-birthday", "Give me name and birthday in format DD.MM.YYYY.", "add-birthday <name> <DD.MM.YYYY>", d.addBirthday)
	add("show-birthday", MsgEnterName, "show-birthday <name>", d.showBirthday)
	add("birthdays", MsgInvalidCommand, "birthdays", d.birthdays)
	add("export", MsgInvalidCommand, "export [path]", d.export)
	add("help", MsgInvalidCommand, "help", d.help)
}

func (d *Dispatcher) addContact(ctx context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "", argCount(args)
	}
	phone, err := core.ParsePhone(args[1])
	if err != nil {
		return "", err
	}
	created, err := d.store.Upsert(ctx, args[0], []string{phone}, nil)
	if err != nil {
		return "", err
	}
	if created {
		return MsgContactAdded, nil
	}
	return MsgContactUpdated, nil
}

func (d *Dispatcher) changePhone(ctx context.Context, args []string) (string, error) {
	if len(args) != 3 {
		return "", argCount(args)
	}
	name, oldPhone := args[0], args[1]
	// Unknown contacts and unknown old phones are reported before the new phone is checked.
	c, err := d.store.Find(ctx, name)
	if err != nil {
		return "", err
	}
	if !c.HasPhone(oldPhone) {
		return "", notFoundPhone(name, oldPhone)
	}
	newPhone, err := core.ParsePhone(args[2])
	if err != nil {
		return "", err
	}
	if err := d.store.ReplacePhone(ctx, name, oldPhone, newPhone); err != nil {
		return "", err
	}
	return MsgContactUpdated, nil
}

func (d *Dispatcher) showPhone(ctx context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", argCount(args)
	}
	c, err := d.store.Find(ctx, args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", c.Name, schema.FormatPhones(c.Phones, ", ", MsgNoPhones)), nil
}

func (d *Dispatcher) showAll(ctx context.Context, _ []string) (string, error) {
	contacts, err := d.store.All(ctx)
	if err != nil {
		return "", err
	}
	if len(contacts) == 0 {
		return MsgNoContacts, nil
	}
	today := d.clock()
	return render(func(buf *bytes.Buffer) error {
		return d.writer.WriteContacts(buf, contacts, d.cfg, today)
	})
}

func (d *Dispatcher) addBirthday(ctx context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "", argCount(args)
	}
	birthday, err := core.ParseBirthday(args[1])
	if err != nil {
		return "", err
	}
	if _, err := d.store.Upsert(ctx, args[0], nil, &birthday); err != nil {
		return "", err
	}
	return MsgBirthdaySet, nil
}

func (d *Dispatcher) showBirthday(ctx context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", argCount(args)
	}
	c, err := d.store.Find(ctx, args[0])
	if err != nil {
		return "", err
	}
	if c.Birthday == nil {
		return MsgBirthdayNotSet, nil
	}
	return fmt.Sprintf("%s: %s", c.Name, schema.FormatDate(*c.Birthday)), nil
}

func (d *Dispatcher) birthdays(ctx context.Context, _ []string) (string, error) {
	contacts, err := d.store.All(ctx)
	if err != nil {
		return "", err
	}
	groups := core.GroupByNotifyDate(core.UpcomingBirthdays(contacts, d.clock()))
	if len(groups) == 0 {
		return MsgNoBirthdays, nil
	}
	return render(func(buf *bytes.Buffer) error {
		return d.writer.WriteBirthdays(buf, groups, d.cfg)
	})
}

func (d *Dispatcher) export(ctx context.Context, args []string) (string, error) {
	if len(args) > 1 {
		return "", argCount(args)
	}
	contacts, err := d.store.All(ctx)
	if err != nil {
		return "", err
	}
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	start := time.Now()
	written, err := d.writer.Export(contacts, d.cfg, d.clock(), path)
	if err != nil {
		return "", err
	}
	d.log.Info("exported contacts", "path", written, "count", len(contacts), "duration", time.Since(start))
	return fmt.Sprintf("Exported %d contacts to %s", len(contacts), written), nil
}

func (d *Dispatcher) help(_ context.Context, _ []string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	sb.WriteString("  hello | hi | hey\n")
	for _, name := range d.order {
		fmt.Fprintf(&sb, "  %s\n", d.commands[name].help)
	}
	sb.WriteString("  close | exit")
	return sb.String(), nil
}
