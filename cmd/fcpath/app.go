// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"os"

	"fcpath/internal/config"
	"fcpath/internal/diag"
	"fcpath/internal/resolve"
	"fcpath/pkg/syspath"

	"github.com/charmbracelet/log"
)

// app wires the CLI layer's dependencies: loaded configuration, the
// resolver, and the installer. Command handlers construct one per run and
// delegate through it.
type app struct {
	cfg       *config.Config
	logger    *log.Logger
	resolver  *resolve.Resolver
	installer *syspath.Installer
}

// newApp loads configuration and builds the production resolver/installer.
func newApp(ctx context.Context) (*app, error) {
	logger := newLogger()

	cfg, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return nil, err
	}

	resolver := resolve.New(diag.PTYRunner{})
	resolver.Logger = logger

	// The caller-side Python version enables the compatibility warning;
	// without a host python3 the comparison is silently skipped.
	if version, err := diag.HostPythonVersion(ctx); err == nil {
		resolver.CallerVersion = version
	} else {
		logger.Debug("host python version unavailable; skipping version check", "err", err)
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		resolver:  resolver,
		installer: syspath.NewInstaller(),
	}, nil
}

// hints merges flag and configuration inputs into resolution hints.
// Precedence: flags, then environment (already merged into cfg by viper),
// then the config file.
func (a *app) hints() resolve.Hints {
	h := resolve.Hints{
		RootOverride: a.cfg.Freecad.LibRoot,
		RootSource:   config.EnvLibRoot,
		Executable:   a.cfg.Freecad.Executable,
	}
	if rootOverride != "" {
		h.RootOverride = rootOverride
		h.RootSource = "--root"
	}
	if executableFlag != "" {
		h.Executable = executableFlag
	}
	return h
}

// policy returns the effective install policy (flag over config).
func (a *app) policy() (syspath.Policy, error) {
	p := a.cfg.Install.Policy
	if policyFlag != "" {
		p = syspath.Policy(policyFlag)
	}
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// resolveRoot runs discovery (or the override short-circuit) and returns the
// library root.
func (a *app) resolveRoot(ctx context.Context) (string, error) {
	root, err := a.resolver.Resolve(ctx, a.hints())
	if err != nil {
		return "", err
	}
	a.logger.Debug("resolved freecad library root", "root", root)
	return root, nil
}

// resolveAndInstall resolves the root and installs it into a search list
// seeded from the current PYTHONPATH. The mutated list is returned; nothing
// is written to stdout.
func (a *app) resolveAndInstall(ctx context.Context) (string, *syspath.List, error) {
	policy, err := a.policy()
	if err != nil {
		return "", nil, err
	}

	root, err := a.resolveRoot(ctx)
	if err != nil {
		return "", nil, err
	}

	list := syspath.FromEnv(os.Getenv("PYTHONPATH"))
	if err := a.installer.Install(root, policy, list); err != nil {
		return "", nil, err
	}
	a.logger.Debug("installed search path", "policy", policy, "entries", list.Len())
	return root, list, nil
}
