package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-console/internal/inventory"
	"github.com/rogerio-castellano/inventory-console/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const browseHelp = `Comandos:
  /texto              buscar productos (/ solo limpia la búsqueda)
  p <n>               ir a la página n
  set <campo> <valor> completar el formulario (name, quantity, unit, alertLevel)
  form                mostrar el formulario
  add                 agregar el producto del formulario
  del <id>            eliminar un producto
  y | n               confirmar o cancelar la eliminación
  ok                  cerrar la alerta
  help                mostrar esta ayuda
  q                   volver al menú`

func newBrowseCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and edit the inventory interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer a.Close()

			s := &session{
				ctrl: a.ctrl,
				out:  cmd.OutOrStdout(),
			}
			_ = a.ctrl.Mount(cmd.Context())
			return s.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// session runs one interactive browse loop over a line based input.
type session struct {
	ctrl *inventory.Controller
	out  io.Writer
}

// run reads commands until q, end of input or ctx is done. Lines are read
// on their own goroutine so an interrupt does not wait for the next line.
func (s *session) run(ctx context.Context, in io.Reader) error {
	done := make(chan struct{})
	defer close(done)
	lines, errc := readLines(in, done)

	render.State(s.out, s.ctrl.State())
	fmt.Fprint(s.out, "\n> ")

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			if line == "q" {
				return nil
			}
			if msg := s.handle(ctx, line); msg != "" {
				fmt.Fprintln(s.out, msg)
			}

			fmt.Fprintln(s.out)
			render.State(s.out, s.ctrl.State())
			fmt.Fprint(s.out, "\n> ")
		}
	}
}

// readLines sends trimmed lines of r until it is exhausted or done is
// closed, then closes lines and reports the scan error on errc.
func readLines(r io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- strings.TrimSpace(sc.Text()):
			case <-done:
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

// handle applies one input line and returns a message for the user, if any.
// An open delete prompt or alert accepts only its own answers.
func (s *session) handle(ctx context.Context, line string) string {
	state := s.ctrl.State()

	if state.DeletePromptOpen() {
		switch {
		case isYes(line):
			_ = s.ctrl.ConfirmDelete(ctx)
		case isNo(line):
			s.ctrl.CancelDelete()
		default:
			return "Responda y o n."
		}
		return ""
	}

	if state.AlertOpen() {
		if line != "ok" {
			return "Presione ok para cerrar la alerta."
		}
		s.ctrl.DismissAlert()
		return ""
	}

	if strings.HasPrefix(line, "/") {
		s.ctrl.SetSearch(strings.TrimPrefix(line, "/"))
		return ""
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "help":
		return browseHelp
	case "p":
		if len(fields) != 2 {
			return "Uso: p <n>"
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return "Número de página inválido."
		}
		s.ctrl.SelectPage(n)
	case "set":
		if len(fields) < 2 {
			return "Uso: set <campo> <valor>"
		}
		field, value := splitSet(line)
		if err := s.ctrl.SetField(field, value); err != nil {
			return fmt.Sprintf("Campo desconocido: %s", field)
		}
	case "form":
		var b strings.Builder
		render.Draft(&b, state.Draft)
		return strings.TrimRight(b.String(), "\n")
	case "add":
		if err := s.ctrl.Submit(ctx); err == nil {
			return "Producto agregado."
		}
	case "del":
		if len(fields) != 2 {
			return "Uso: del <id>"
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return "ID inválido."
		}
		p, ok := state.Find(id)
		if !ok {
			return fmt.Sprintf("No existe el producto %d.", id)
		}
		s.ctrl.RequestDelete(p)
	default:
		return "Comando desconocido, escriba help."
	}
	return ""
}

// splitSet splits "set <field> <value>" keeping the spacing inside value.
func splitSet(line string) (field, value string) {
	rest := strings.TrimLeft(strings.TrimPrefix(line, "set"), " \t")
	i := strings.IndexAny(rest, " \t")
	if i < 0 {
		return rest, ""
	}
	return rest[:i], strings.TrimLeft(rest[i:], " \t")
}
