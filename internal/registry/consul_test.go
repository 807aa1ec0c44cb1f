package registry

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/hashicorp/consul/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAgent struct {
	registered     *api.AgentServiceRegistration
	registerErr    error
	deregisteredID string
	deregisterErr  error
	deregisters    int
}

func (f *fakeAgent) ServiceRegister(reg *api.AgentServiceRegistration) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	f.registered = reg
	return nil
}

func (f *fakeAgent) ServiceDeregister(serviceID string) error {
	f.deregisters++
	if f.deregisterErr != nil {
		return f.deregisterErr
	}
	f.deregisteredID = serviceID
	return nil
}

func TestClient_Register(t *testing.T) {
	agent := &fakeAgent{}
	client := newClient(agent, "payment-bank", "bank-host", 8000, []string{"urlprefix-/bank"})

	require.NoError(t, client.Register())
	require.NotNil(t, agent.registered)

	assert.Equal(t, fmt.Sprintf("payment-bank-%d", os.Getpid()), agent.registered.ID)
	assert.Equal(t, "payment-bank", agent.registered.Name)
	assert.Equal(t, "bank-host", agent.registered.Address)
	assert.Equal(t, 8000, agent.registered.Port)
	assert.Equal(t, []string{"urlprefix-/bank"}, agent.registered.Tags)

	require.NotNil(t, agent.registered.Check)
	assert.Equal(t, "http://bank-host:8000/health", agent.registered.Check.HTTP)
	assert.Equal(t, "10s", agent.registered.Check.Interval)
	assert.Equal(t, "5s", agent.registered.Check.Timeout)
}

func TestClient_RegisterIsIdempotent(t *testing.T) {
	agent := &fakeAgent{}
	client := newClient(agent, "payment-bank", "localhost", 8000, nil)

	require.NoError(t, client.Register())
	first := agent.registered
	agent.registered = nil

	require.NoError(t, client.Register())
	assert.Nil(t, agent.registered, "second Register must not re-send")
	_ = first
}

func TestClient_RegisterFailurePropagates(t *testing.T) {
	agent := &fakeAgent{registerErr: errors.New("agent unreachable")}
	client := newClient(agent, "payment-bank", "localhost", 8000, nil)

	err := client.Register()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agent unreachable")

	// a failed registration leaves nothing to deregister
	client.Deregister()
	assert.Zero(t, agent.deregisters)
}

func TestClient_Deregister(t *testing.T) {
	agent := &fakeAgent{}
	client := newClient(agent, "payment-method", "localhost", 8001, nil)
	require.NoError(t, client.Register())

	client.Deregister()
	assert.Equal(t, client.InstanceID(), agent.deregisteredID)
	assert.Equal(t, 1, agent.deregisters)

	// already unregistered, nothing more to do
	client.Deregister()
	assert.Equal(t, 1, agent.deregisters)
}

func TestClient_DeregisterFailureIsSwallowed(t *testing.T) {
	agent := &fakeAgent{deregisterErr: errors.New("agent gone")}
	client := newClient(agent, "payment-method", "localhost", 8001, nil)
	require.NoError(t, client.Register())

	// must not panic or surface the error
	client.Deregister()
	assert.Equal(t, 1, agent.deregisters)
}
