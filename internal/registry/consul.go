package registry

import (
	"fmt"
	"os"

	"github.com/hashicorp/consul/api"
	"github.com/sirupsen/logrus"
)

const (
	healthCheckInterval = "10s"
	healthCheckTimeout  = "5s"
)

// Agent is the slice of the consul agent API the client uses.
type Agent interface {
	ServiceRegister(reg *api.AgentServiceRegistration) error
	ServiceDeregister(serviceID string) error
}

// Client registers this process with a consul agent at startup and
// deregisters it at shutdown. It moves between exactly two states,
// unregistered and registered, one best-effort attempt each way: a failed
// registration must abort startup, a failed deregistration is only
// logged.
type Client struct {
	agent       Agent
	serviceName string
	instanceID  string
	address     string
	port        int
	tags        []string
	registered  bool
}

// New builds a registry client talking to the consul agent at consulAddr.
// The instance id is derived from the service name and the process id so
// concurrent instances on one host stay distinct.
func New(consulAddr, serviceName, address string, port int, tags []string) (*Client, error) {
	cfg := api.DefaultConfig()
	cfg.Address = consulAddr
	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("consul client: %w", err)
	}
	return newClient(client.Agent(), serviceName, address, port, tags), nil
}

func newClient(agent Agent, serviceName, address string, port int, tags []string) *Client {
	return &Client{
		agent:       agent,
		serviceName: serviceName,
		instanceID:  fmt.Sprintf("%s-%d", serviceName, os.Getpid()),
		address:     address,
		port:        port,
		tags:        tags,
	}
}

// InstanceID returns the unique id this process registers under.
func (c *Client) InstanceID() string {
	return c.instanceID
}

// Register announces the service to consul with an HTTP health check on
// /health. Errors propagate to the caller; the caller treats them as
// fatal before accepting connections.
func (c *Client) Register() error {
	if c.registered {
		return nil
	}
	reg := &api.AgentServiceRegistration{
		ID:      c.instanceID,
		Name:    c.serviceName,
		Address: c.address,
		Port:    c.port,
		Tags:    c.tags,
		Check: &api.AgentServiceCheck{
			HTTP:     fmt.Sprintf("http://%s:%d/health", c.address, c.port),
			Interval: healthCheckInterval,
			Timeout:  healthCheckTimeout,
		},
	}
	if err := c.agent.ServiceRegister(reg); err != nil {
		return fmt.Errorf("register %s: %w", c.instanceID, err)
	}
	c.registered = true
	logrus.WithFields(logrus.Fields{
		"service":     c.serviceName,
		"instance_id": c.instanceID,
		"address":     c.address,
		"port":        c.port,
	}).Info("registered with consul")
	return nil
}

// Deregister removes the service from consul. Failures are logged and
// swallowed so they never block shutdown.
func (c *Client) Deregister() {
	if !c.registered {
		return
	}
	if err := c.agent.ServiceDeregister(c.instanceID); err != nil {
		logrus.WithError(err).WithField("instance_id", c.instanceID).Error("consul deregister failed")
		return
	}
	c.registered = false
	logrus.WithField("instance_id", c.instanceID).Info("deregistered from consul")
}
