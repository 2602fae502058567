/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ssargent/bytewords/pkg/config"
)

const serviceName = "bytewords.service"

var (
	systemdUnitPath = "/etc/systemd/system/" + serviceName
	serviceBinary   = "/usr/local/bin/bytewords"

	// swapped out in tests
	runCommand = execCommand
)

// serviceCmd represents the service command
var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Manage Bytewords as a systemd service",
	Long: `Manage the Bytewords API server as a systemd service.

The service runs with a restricted umask and restarts on failure.`,
}

// installServiceCmd represents the service install command
var installServiceCmd = &cobra.Command{
	Use:   "install",
	Short: "Install Bytewords as a systemd service",
	Long: `Install Bytewords as a systemd service.

This will:
- Create or reuse the configuration file
- Write the systemd unit file
- Enable and optionally start the service

Examples:
  sudo bytewords service install
  sudo bytewords service install --data-dir /var/lib/bytewords --user bytewords`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		user, _ := cmd.Flags().GetString("user")
		startNow, _ := cmd.Flags().GetBool("start")

		if os.Geteuid() != 0 {
			return fmt.Errorf("service install requires root privileges (run with sudo)")
		}

		cmd.Printf("🔧 Installing Bytewords systemd service...\n")

		svcConfig := cfg
		if !config.ConfigExists(configPath) {
			var err error
			svcConfig, err = config.BootstrapConfig(configPath, dataDir)
			if err != nil {
				return fmt.Errorf("error bootstrapping config: %w", err)
			}
			cmd.Printf("✅ Created new configuration at %s\n", configPath)
		} else {
			cmd.Printf("✅ Loaded existing configuration\n")
		}

		if cmd.Flags().Changed("data-dir") {
			svcConfig.DataDir = dataDir
		}
		if cmd.Flags().Changed("port") {
			svcConfig.Port, _ = cmd.Flags().GetInt("port")
		}
		if err := config.SaveConfig(svcConfig, configPath); err != nil {
			return fmt.Errorf("error saving config: %w", err)
		}

		if err := writeSystemdUnit(systemdUnitPath, svcConfig, configPath, user); err != nil {
			return fmt.Errorf("error creating systemd unit: %w", err)
		}
		if err := runCommand("systemctl", "daemon-reload"); err != nil {
			return fmt.Errorf("error reloading systemd: %w", err)
		}
		if err := runCommand("systemctl", "enable", serviceName); err != nil {
			return fmt.Errorf("error enabling service: %w", err)
		}
		cmd.Printf("✅ Service enabled successfully\n")

		if startNow {
			if err := runCommand("systemctl", "start", serviceName); err != nil {
				return fmt.Errorf("error starting service: %w", err)
			}
			cmd.Printf("✅ Service started successfully\n")
		}

		cmd.Printf("\n🎉 Bytewords service installed!\n")
		cmd.Printf("Service: %s\n", serviceName)
		cmd.Printf("Config: %s\n", configPath)
		cmd.Printf("Data: %s\n", svcConfig.DataDir)
		cmd.Printf("Port: %d\n", svcConfig.Port)
		cmd.Printf("To view logs: sudo journalctl -u %s -f\n", serviceName)
		return nil
	},
}

// statusCmd represents the service status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show Bytewords service status",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCommand("systemctl", "status", serviceName); err != nil {
			return fmt.Errorf("error getting service status: %w", err)
		}
		return nil
	},
}

// uninstallCmd represents the service uninstall command
var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Uninstall the Bytewords service",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Geteuid() != 0 {
			return fmt.Errorf("service uninstall requires root privileges (run with sudo)")
		}

		cmd.Printf("🗑️  Uninstalling Bytewords service...\n")

		// Already stopped is fine
		_ = runCommand("systemctl", "stop", serviceName)

		if err := runCommand("systemctl", "disable", serviceName); err != nil {
			cmd.Printf("Warning: could not disable service: %v\n", err)
		}

		if err := removeSystemdUnit(systemdUnitPath); err != nil {
			return fmt.Errorf("error removing unit file: %w", err)
		}
		if err := runCommand("systemctl", "daemon-reload"); err != nil {
			return fmt.Errorf("error reloading systemd: %w", err)
		}

		cmd.Printf("✅ Bytewords service uninstalled\n")
		cmd.Printf("Note: Configuration and vault data were not removed\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serviceCmd)

	serviceCmd.AddCommand(installServiceCmd)
	serviceCmd.AddCommand(statusCmd)
	serviceCmd.AddCommand(uninstallCmd)

	installServiceCmd.Flags().String("data-dir", "/var/lib/bytewords", "Data directory for the service")
	installServiceCmd.Flags().String("user", "bytewords", "User to run the service as")
	installServiceCmd.Flags().Int("port", 8080, "Port for the service")
	installServiceCmd.Flags().Bool("start", true, "Start the service after installation")
}

// systemdUnit renders the unit file for the service
func systemdUnit(cfg *config.Config, configPath, user string) string {
	return fmt.Sprintf(`[Unit]
Description=Bytewords API Server
After=network-online.target
Wants=network-online.target

[Service]
User=%s
Group=%s
ExecStart=%s serve --config %s
Restart=on-failure
NoNewPrivileges=true
UMask=0077
ReadWritePaths=%s
ReadWritePaths=%s

[Install]
WantedBy=multi-user.target
`, user, user, serviceBinary, configPath, cfg.DataDir, filepath.Dir(configPath))
}

func writeSystemdUnit(unitPath string, cfg *config.Config, configPath, user string) error {
	return os.WriteFile(unitPath, []byte(systemdUnit(cfg, configPath, user)), 0600)
}

func removeSystemdUnit(unitPath string) error {
	if _, err := os.Stat(unitPath); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(unitPath)
}

func execCommand(command string, args ...string) error {
	c := exec.Command(command, args...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
