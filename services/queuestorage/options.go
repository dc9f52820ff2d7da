package queuestorage

// Per-call Timeout and ClientRequestID setters.

// Timeout sets the server-side timeout in seconds.
func (call *ServiceGetPropertiesCall) Timeout(seconds int) *ServiceGetPropertiesCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *ServiceGetPropertiesCall) ClientRequestID(id string) *ServiceGetPropertiesCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *ServiceSetPropertiesCall) Timeout(seconds int) *ServiceSetPropertiesCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *ServiceSetPropertiesCall) ClientRequestID(id string) *ServiceSetPropertiesCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *ServiceGetStatisticsCall) Timeout(seconds int) *ServiceGetStatisticsCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *ServiceGetStatisticsCall) ClientRequestID(id string) *ServiceGetStatisticsCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *ListQueuesCall) Timeout(seconds int) *ListQueuesCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *ListQueuesCall) ClientRequestID(id string) *ListQueuesCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *QueueCreateCall) Timeout(seconds int) *QueueCreateCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *QueueCreateCall) ClientRequestID(id string) *QueueCreateCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *QueueDeleteCall) Timeout(seconds int) *QueueDeleteCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *QueueDeleteCall) ClientRequestID(id string) *QueueDeleteCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *QueueGetPropertiesCall) Timeout(seconds int) *QueueGetPropertiesCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *QueueGetPropertiesCall) ClientRequestID(id string) *QueueGetPropertiesCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *QueueSetMetadataCall) Timeout(seconds int) *QueueSetMetadataCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *QueueSetMetadataCall) ClientRequestID(id string) *QueueSetMetadataCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *QueueGetAccessPolicyCall) Timeout(seconds int) *QueueGetAccessPolicyCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *QueueGetAccessPolicyCall) ClientRequestID(id string) *QueueGetAccessPolicyCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *QueueSetAccessPolicyCall) Timeout(seconds int) *QueueSetAccessPolicyCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *QueueSetAccessPolicyCall) ClientRequestID(id string) *QueueSetAccessPolicyCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *DequeueCall) Timeout(seconds int) *DequeueCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *DequeueCall) ClientRequestID(id string) *DequeueCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *EnqueueCall) Timeout(seconds int) *EnqueueCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *EnqueueCall) ClientRequestID(id string) *EnqueueCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *ClearCall) Timeout(seconds int) *ClearCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *ClearCall) ClientRequestID(id string) *ClearCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *PeekCall) Timeout(seconds int) *PeekCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *PeekCall) ClientRequestID(id string) *PeekCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *MessageUpdateCall) Timeout(seconds int) *MessageUpdateCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *MessageUpdateCall) ClientRequestID(id string) *MessageUpdateCall {
	call.clientRequestID = id
	return call
}

// Timeout sets the server-side timeout in seconds.
func (call *MessageDeleteCall) Timeout(seconds int) *MessageDeleteCall {
	call.timeout = seconds
	return call
}

// ClientRequestID is recorded in the storage analytics logs.
func (call *MessageDeleteCall) ClientRequestID(id string) *MessageDeleteCall {
	call.clientRequestID = id
	return call
}
