package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/petal-labs/visionary/cli/keystore"
)

func (a *App) newKeysCommand() *cobra.Command {
	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage API keys",
		Long: `Manage stored Gemini API keys. Keys are encrypted at rest.

The entry named by api_key_ref in the config (default "gemini") is used when
no key is found in the environment.`,
	}

	keysCmd.AddCommand(&cobra.Command{
		Use:   "set [name]",
		Short: "Store an API key",
		Long:  `Store an API key. The key is read without echo when stdin is a terminal.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runKeysSet,
	})
	keysCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored API keys",
		Long:  `List stored key names. Key values are never shown.`,
		Args:  cobra.NoArgs,
		RunE:  a.runKeysList,
	})
	keysCmd.AddCommand(&cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a stored API key",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runKeysDelete,
	})

	return keysCmd
}

func (a *App) keyName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.APIKeyRef
}

func (a *App) readKey() (string, error) {
	// Read without echo if terminal
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		keyBytes, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.stdout) // Newline after hidden input
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(keyBytes)), nil
	}

	// Fallback for non-terminal (e.g., piped input)
	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) runKeysSet(cmd *cobra.Command, args []string) error {
	name := a.keyName(args)
	if name == "" {
		return a.fail(ExitValidation, errors.New("key name required"))
	}

	fmt.Fprintf(a.stdout, "Enter API key for %s: ", name)
	apiKey, err := a.readKey()
	if err != nil {
		return a.fail(ExitValidation, fmt.Errorf("failed to read key: %w", err))
	}
	if apiKey == "" {
		return a.fail(ExitValidation, errors.New("API key cannot be empty"))
	}

	ks, err := a.newKeystore()
	if err != nil {
		return a.fail(ExitValidation, fmt.Errorf("failed to open keystore: %w", err))
	}
	if err := ks.Set(name, apiKey); err != nil {
		return a.fail(ExitValidation, fmt.Errorf("failed to store key: %w", err))
	}

	fmt.Fprintf(a.stdout, "API key %s stored successfully.\n", name)
	return nil
}

func (a *App) runKeysList(cmd *cobra.Command, args []string) error {
	ks, err := a.newKeystore()
	if err != nil {
		return a.fail(ExitValidation, fmt.Errorf("failed to open keystore: %w", err))
	}

	names, err := ks.List()
	if err != nil {
		return a.fail(ExitValidation, fmt.Errorf("failed to list keys: %w", err))
	}

	if a.jsonOutput {
		return a.writeJSON(map[string][]string{"keys": names})
	}

	if len(names) == 0 {
		fmt.Fprintln(a.stdout, "No API keys stored.")
		return nil
	}

	fmt.Fprintln(a.stdout, "Stored keys:")
	for _, name := range names {
		fmt.Fprintf(a.stdout, "  - %s\n", name)
	}

	return nil
}

func (a *App) runKeysDelete(cmd *cobra.Command, args []string) error {
	name := a.keyName(args)

	ks, err := a.newKeystore()
	if err != nil {
		return a.fail(ExitValidation, fmt.Errorf("failed to open keystore: %w", err))
	}

	if err := ks.Delete(name); err != nil {
		var notFound *keystore.ErrKeyNotFound
		if errors.As(err, &notFound) {
			return a.fail(ExitValidation, fmt.Errorf("no key stored for %s", name))
		}
		return a.fail(ExitValidation, fmt.Errorf("failed to delete key: %w", err))
	}

	fmt.Fprintf(a.stdout, "API key %s deleted.\n", name)
	return nil
}
